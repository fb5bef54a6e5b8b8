package multipart

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
)

// RFC 2046: up to 70 printable characters, not ending in a space. The
// leading "--" pushes practical lines past that, so the pattern allows the
// longer tokens seen from real user agents.
var boundaryRe = regexp.MustCompile(`^[ -~]{0,200}[!-~]$`)

// delimiter holds the two boundary line forms of one multipart body: the
// continuing delimiter "--boundary" and the terminal "--boundary--".
type delimiter struct {
	next []byte
	last []byte
}

func newDelimiter(boundary string) (delimiter, error) {
	if !boundaryRe.MatchString(boundary) {
		return delimiter{}, fmt.Errorf("%w: invalid boundary token %q", ErrMalformedBoundary, boundary)
	}
	return delimiter{
		next: []byte("--" + boundary),
		last: []byte("--" + boundary + "--"),
	}, nil
}

// match classifies a line already stripped of its terminator. Trailing
// whitespace after the delimiter is tolerated, lookalike lines inside part
// bodies ("--with boundary" etc.) are not matched.
func (d delimiter) match(line []byte) (terminal, ok bool) {
	if !bytes.HasPrefix(line, d.next[:2]) {
		return false, false
	}
	t := bytes.TrimRight(line, " \t")
	if bytes.Equal(t, d.next) {
		return false, true
	}
	if bytes.Equal(t, d.last) {
		return true, true
	}
	return false, false
}

// skipPreamble consumes lines up to and including the first boundary line.
// Anything before it, blank lines included, is discarded without error.
// terminal reports whether that first boundary already closed the body.
func (d delimiter) skipPreamble(ls *LineSplitter) (terminal bool, err error) {
	for {
		line, _, err := ls.Next()
		if err == io.EOF {
			return false, fmt.Errorf("%w: expected boundary at start of multipart data", ErrMalformedBoundary)
		}
		if err != nil {
			return false, err
		}
		if terminal, ok := d.match(line); ok {
			return terminal, nil
		}
	}
}
