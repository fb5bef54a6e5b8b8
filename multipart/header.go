package multipart

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/limits"
)

// HeaderField is one name/value pair of a part header block. A folded
// header keeps its continuation lines in Value joined by "\n ".
type HeaderField struct {
	Key   string
	Value string
}

// Header is an ordered set of part headers with case-insensitive lookup.
type Header []HeaderField

// Get returns the value of the first header matching key, or "".
func (h Header) Get(key string) string {
	for _, f := range h {
		if strings.EqualFold(f.Key, key) {
			return f.Value
		}
	}
	return ""
}

// Values returns all values for key in wire order.
func (h Header) Values(key string) []string {
	var out []string
	for _, f := range h {
		if strings.EqualFold(f.Key, key) {
			out = append(out, f.Value)
		}
	}
	return out
}

// parseHeaderBlock consumes lines until a blank line, folding RFC 822
// continuation lines (leading whitespace) into the previous header. Every
// header line must carry a terminator; reaching end of input before the
// blank line fails with ErrMalformedHeaders. Header bytes are charged to
// the accountant as they are read.
func parseHeaderBlock(ls *LineSplitter, acct *limits.Accountant) (Header, error) {
	var h Header
	for {
		line, term, err := ls.Next()
		if err != nil {
			return nil, fmt.Errorf("%w: header block never terminates", ErrMalformedHeaders)
		}
		if term == nil {
			return nil, fmt.Errorf("%w: unexpected end of line in header block", ErrMalformedHeaders)
		}
		if err := acct.Add(len(line)); err != nil {
			return nil, err
		}
		if len(line) == 0 {
			return h, nil
		}
		if line[0] == ' ' || line[0] == '\t' {
			if len(h) == 0 {
				return nil, fmt.Errorf("%w: continuation line before any header", ErrMalformedHeaders)
			}
			h[len(h)-1].Value += "\n " + strings.TrimSpace(string(line))
			continue
		}
		key, value, ok := strings.Cut(string(line), ":")
		if !ok {
			continue
		}
		h = append(h, HeaderField{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
}

// parseOptions splits a header value of the form "value; k1=v1; k2=v2"
// into the bare value and its parameters. Parameter names are lowercased;
// quoted parameter values are unquoted. Semicolons inside quoted strings
// are respected.
func parseOptions(s string) (string, map[string]string) {
	segs := splitUnquoted(s, ';')
	value := strings.TrimSpace(segs[0])
	params := make(map[string]string, len(segs)-1)
	for _, seg := range segs[1:] {
		k, v, ok := strings.Cut(seg, "=")
		if !ok {
			continue
		}
		params[strings.ToLower(strings.TrimSpace(k))] = unquoteValue(strings.TrimSpace(v))
	}
	return value, params
}

// splitUnquoted splits s on sep, ignoring separators inside double-quoted
// strings.
func splitUnquoted(s string, sep byte) []string {
	var (
		out      []string
		start    int
		inQuotes bool
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case '\\':
			if inQuotes && i+1 < len(s) {
				i++
			}
		case sep:
			if !inQuotes {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// unquoteValue strips surrounding double quotes and resolves \\ and \"
// escapes. Lone backslashes are kept: browsers send Windows paths in
// filename parameters unescaped, and UNC paths are left entirely as-is.
func unquoteValue(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]
	if strings.HasPrefix(s, `\\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\\`, `\`)
	return strings.ReplaceAll(s, `\"`, `"`)
}
