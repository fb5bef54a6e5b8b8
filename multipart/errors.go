package multipart

import (
	"errors"
	"fmt"
)

// Decode errors
var (
	// ErrMalformedBoundary is returned for an invalid boundary token or a
	// body that never reaches a boundary line.
	ErrMalformedBoundary = errors.New("multipart: malformed or missing boundary")

	// ErrMalformedHeaders is returned when a part's header block does not
	// terminate with a blank line or contains an unterminated line.
	ErrMalformedHeaders = errors.New("multipart: malformed part headers")

	// ErrTruncatedBody is returned when the body ends before the terminal
	// boundary.
	ErrTruncatedBody = errors.New("multipart: unexpected end of body")
)

// BodyDecodeError reports a field body that could not be decoded, either
// because its declared transfer encoding is unsupported or because the
// payload is broken.
type BodyDecodeError struct {
	Field string
	Err   error
}

func (e *BodyDecodeError) Error() string {
	return fmt.Sprintf("multipart: could not decode body of field %q: %v", e.Field, e.Err)
}

func (e *BodyDecodeError) Unwrap() error { return e.Err }
