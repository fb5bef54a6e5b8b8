package formkit

import (
	"io"
	"strings"

	"github.com/dmitrymomot/formkit/limits"
	"github.com/dmitrymomot/formkit/multipart"
)

// parseURLEncoded reads an application/x-www-form-urlencoded body and
// splits it into ordered key/value pairs. The body is read in chunks with
// every chunk charged against the in-memory limit before it is buffered,
// so an oversized body fails mid-read. Pairs with broken percent escapes
// are dropped rather than failing the whole form.
func parseURLEncoded(body io.Reader, contentLength int64, cfg config) (*Fields, error) {
	if contentLength < 0 || body == nil {
		return &Fields{}, nil
	}

	acct := limits.NewAccountant(cfg.limits)
	var (
		buf   []byte
		chunk [4096]byte
		src   = io.LimitReader(body, contentLength)
	)
	for {
		n, err := src.Read(chunk[:])
		if n > 0 {
			if err := acct.Add(n); err != nil {
				return nil, err
			}
			buf = append(buf, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	fields := &Fields{}
	for _, pair := range strings.Split(string(buf), "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, okKey := unescapeForm(rawKey, cfg)
		value, okValue := unescapeForm(rawValue, cfg)
		if !okKey || !okValue || key == "" {
			continue
		}
		fields.list = append(fields.list, Field{Name: key, Value: value})
	}
	return fields, nil
}

// unescapeForm resolves + and %XX escapes, then applies charset decoding.
func unescapeForm(s string, cfg config) (string, bool) {
	s = strings.ReplaceAll(s, "+", " ")
	raw := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			if i+2 >= len(s) {
				return "", false
			}
			hi, okHi := unhexByte(s[i+1])
			lo, okLo := unhexByte(s[i+2])
			if !okHi || !okLo {
				return "", false
			}
			raw = append(raw, hi<<4|lo)
			i += 2
			continue
		}
		raw = append(raw, s[i])
	}
	out, err := multipart.DecodeText(raw, cfg.charset, cfg.policy)
	if err != nil {
		return "", false
	}
	return out, true
}

func unhexByte(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
