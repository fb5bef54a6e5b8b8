package multipart

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// Policy selects how text decoding reacts to bytes that are invalid for the
// selected charset.
type Policy int

const (
	// PolicyReplace substitutes invalid bytes with U+FFFD. This is the
	// default.
	PolicyReplace Policy = iota
	// PolicyStrict fails on invalid bytes and on unknown charsets.
	PolicyStrict
	// PolicyIgnore drops invalid bytes.
	PolicyIgnore
)

// DecodeText converts raw bytes to a string using the named charset and the
// given error policy. An empty charset name means UTF-8. Charset lookup
// uses the WHATWG encoding index, so common aliases (latin1, iso-8859-1,
// windows-1252, ...) resolve as browsers would resolve them.
func DecodeText(b []byte, charset string, p Policy) (string, error) {
	name := strings.ToLower(strings.TrimSpace(charset))
	switch name {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return decodeUTF8(b, p)
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		if p == PolicyStrict {
			return "", fmt.Errorf("unknown charset %q", charset)
		}
		return decodeUTF8(b, p)
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil && p == PolicyStrict {
		return "", fmt.Errorf("invalid %s data: %w", charset, err)
	}
	return string(out), nil
}

func decodeUTF8(b []byte, p Policy) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	switch p {
	case PolicyStrict:
		return "", fmt.Errorf("invalid UTF-8 data")
	case PolicyIgnore:
		return strings.ToValidUTF8(string(b), ""), nil
	default:
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
	}
}
