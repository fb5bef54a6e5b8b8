package sink

import "io"

// Sink is a writable-then-readable byte store for one uploaded file. The
// decoder writes the file content, rewinds with Seek, and hands the sink to
// the caller inside a FileUpload. Close releases any backing storage.
type Sink interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

// MemoryReporter is implemented by sinks that can tell whether their content
// currently resides in memory. The decoder uses it to charge spooled file
// bytes against the in-memory limit until the sink rolls over to disk.
type MemoryReporter interface {
	InMemory() bool
}

// Factory produces a sink for one file part. lengthHint is the declared
// length of the whole body (not the part) and may be used to pick a backing
// store up front; fieldName, filename and contentType come from the part
// headers. Factories are supplied per decode call.
type Factory func(lengthHint int64, fieldName, filename, contentType string) (Sink, error)

// DefaultThreshold is the spool rollover point used by the Default factory.
const DefaultThreshold = 64 << 10 // 64 KiB

// Default is the standard Factory: a spooled sink with DefaultThreshold.
// When the declared body length already exceeds the threshold the sink is
// backed by a temporary file from the start, skipping the memory phase.
func Default(lengthHint int64, fieldName, filename, contentType string) (Sink, error) {
	s := NewSpool(DefaultThreshold)
	if lengthHint > DefaultThreshold {
		if err := s.spill(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
