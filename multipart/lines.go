package multipart

import (
	"bufio"
	"io"
)

// defaultLineCap bounds the size of a single yielded chunk so one
// terminator-free line cannot grow without limit in memory.
const defaultLineCap = 64 << 10

// Terminator byte sequences as they appeared on the wire.
var (
	termLF   = []byte("\n")
	termCR   = []byte("\r")
	termCRLF = []byte("\r\n")
)

// LineSplitter turns a byte source of known declared length into a lazy,
// forward-only sequence of lines. It recognizes \n, \r and \r\n line
// terminators, which may be mixed within one body, and never reads past the
// declared length.
//
// Lines longer than the cap are yielded in multiple chunks, each without a
// terminator; Uncap disables this for callers streaming one very large
// terminator-free payload. When the source is exhausted without a trailing
// terminator the remaining bytes are yielded as a final unterminated line
// rather than waiting for a terminator that will not arrive.
type LineSplitter struct {
	r    *bufio.Reader
	cap  int
	line []byte
}

// NewLineSplitter creates a splitter over at most length bytes of r. A
// negative length means no length was declared and is treated as an empty
// source.
func NewLineSplitter(r io.Reader, length int64) *LineSplitter {
	if length < 0 {
		length = 0
	}
	return &LineSplitter{
		r:   bufio.NewReader(io.LimitReader(r, length)),
		cap: defaultLineCap,
	}
}

// Uncap disables the per-chunk size limit.
func (s *LineSplitter) Uncap() { s.cap = 0 }

// Next returns the next line without its terminator, plus the terminator
// bytes as they appeared on the wire (nil when the line was capped or the
// source ended without one). It returns io.EOF once the source is
// exhausted. The returned line is only valid until the next call.
func (s *LineSplitter) Next() (line, terminator []byte, err error) {
	s.line = s.line[:0]
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				if len(s.line) > 0 {
					return s.line, nil, nil
				}
				return nil, nil, io.EOF
			}
			return nil, nil, err
		}
		switch b {
		case '\n':
			return s.line, termLF, nil
		case '\r':
			c, err := s.r.ReadByte()
			if err == nil {
				if c == '\n' {
					return s.line, termCRLF, nil
				}
				_ = s.r.UnreadByte()
			}
			return s.line, termCR, nil
		default:
			s.line = append(s.line, b)
			if s.cap > 0 && len(s.line) >= s.cap {
				return s.line, nil, nil
			}
		}
	}
}
