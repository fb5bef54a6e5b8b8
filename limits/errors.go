package limits

import "errors"

// Domain errors for limit enforcement
var (
	// ErrBodyTooLarge is returned when the declared content length exceeds
	// MaxTotalBodyBytes. It is raised before any byte of the body is read.
	ErrBodyTooLarge = errors.New("limits: declared body size exceeds maximum")

	// ErrMemoryLimitExceeded is returned when in-memory accumulation
	// (headers, field values, spooled file data) exceeds MaxInMemoryBytes.
	ErrMemoryLimitExceeded = errors.New("limits: in-memory form data exceeds maximum")

	// ErrPartCountExceeded is returned when a multipart body contains more
	// parts than MaxParts.
	ErrPartCountExceeded = errors.New("limits: multipart part count exceeds maximum")
)
