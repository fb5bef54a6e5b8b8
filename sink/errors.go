package sink

import "errors"

// Common sink errors
var (
	ErrClosed             = errors.New("sink: already closed")
	ErrFailedToCreateFile = errors.New("sink: failed to create spool file")
)
