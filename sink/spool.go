package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Spool is a Sink that buffers in memory up to a threshold and then rolls
// over to a temporary file. It is not safe for concurrent use.
type Spool struct {
	threshold int
	dir       string
	buf       []byte
	off       int64
	file      *os.File
	closed    bool
}

// SpoolOption configures a Spool.
type SpoolOption func(*Spool)

// WithDir sets the directory for the backing temporary file. Defaults to
// the system temporary directory.
func WithDir(dir string) SpoolOption {
	return func(s *Spool) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// NewSpool creates a spooled sink rolling over to disk once more than
// threshold bytes have been written. A non-positive threshold rolls over on
// the first write.
func NewSpool(threshold int, opts ...SpoolOption) *Spool {
	s := &Spool{
		threshold: threshold,
		dir:       os.TempDir(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InMemory reports whether the content is still held in memory.
func (s *Spool) InMemory() bool { return s.file == nil }

// spill moves buffered content into a freshly created temporary file. The
// file name is randomized so spool files cannot be guessed or collide.
func (s *Spool) spill() error {
	path := filepath.Join(s.dir, "formkit-"+uuid.NewString()+".spool")
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return errors.Join(ErrFailedToCreateFile, err)
	}
	if len(s.buf) > 0 {
		if _, err := f.Write(s.buf); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return fmt.Errorf("sink: failed to spill buffer: %w", err)
		}
	}
	s.file = f
	s.buf = nil
	return nil
}

// Write appends p, rolling over to disk when the buffered size would pass
// the threshold.
func (s *Spool) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.file == nil && len(s.buf)+len(p) > s.threshold {
		if err := s.spill(); err != nil {
			return 0, err
		}
	}
	if s.file != nil {
		return s.file.Write(p)
	}
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *Spool) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.file != nil {
		return s.file.Read(p)
	}
	if s.off >= int64(len(s.buf)) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.off:])
	s.off += int64(n)
	return n, nil
}

func (s *Spool) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if s.file != nil {
		return s.file.Seek(offset, whence)
	}
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.off
	case io.SeekEnd:
		base = int64(len(s.buf))
	default:
		return 0, fmt.Errorf("sink: invalid seek whence %d", whence)
	}
	off := base + offset
	if off < 0 {
		return 0, fmt.Errorf("sink: negative seek position %d", off)
	}
	s.off = off
	return off, nil
}

// Close releases the sink and removes the backing temporary file, if any.
// Closing twice is a no-op.
func (s *Spool) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.buf = nil
	if s.file == nil {
		return nil
	}
	path := s.file.Name()
	err := s.file.Close()
	if rmErr := os.Remove(path); rmErr != nil && err == nil {
		err = rmErr
	}
	s.file = nil
	return err
}
