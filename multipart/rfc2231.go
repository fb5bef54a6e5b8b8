package multipart

import (
	"sort"
	"strconv"
	"strings"
)

// extendedParam resolves parameter base among params, reassembling RFC 2231
// continuations (base*0*, base*1*, ...) in ascending index order regardless
// of arrival order. A segment name ending in * is percent-decoded; only
// segment 0 carries a charset'lang' prefix, which then applies to every
// encoded segment. Segments without a trailing * are used verbatim. With no
// continuations present, the single extended form base* and finally the
// plain parameter are consulted.
func extendedParam(params map[string]string, base string) (string, bool) {
	type segment struct {
		index   int
		value   string
		encoded bool
	}

	prefix := base + "*"
	var segs []segment
	for name, val := range params {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		rest := strings.TrimPrefix(name, prefix)
		encoded := strings.HasSuffix(rest, "*")
		rest = strings.TrimSuffix(rest, "*")
		idx, err := strconv.Atoi(rest)
		if err != nil || idx < 0 {
			continue
		}
		segs = append(segs, segment{index: idx, value: val, encoded: encoded})
	}

	if len(segs) == 0 {
		if v, ok := params[prefix]; ok {
			cs, enc := splitCharsetPrefix(v)
			decoded, _ := DecodeText(percentDecode(enc), cs, PolicyReplace)
			return decoded, true
		}
		v, ok := params[base]
		return v, ok
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].index < segs[j].index })

	var (
		b       strings.Builder
		charset string
	)
	for _, seg := range segs {
		if !seg.encoded {
			b.WriteString(seg.value)
			continue
		}
		v := seg.value
		if seg.index == 0 {
			charset, v = splitCharsetPrefix(v)
		}
		decoded, _ := DecodeText(percentDecode(v), charset, PolicyReplace)
		b.WriteString(decoded)
	}
	return b.String(), true
}

// splitCharsetPrefix strips the RFC 2231 charset'language' prefix from an
// extended parameter value.
func splitCharsetPrefix(v string) (charset, rest string) {
	parts := strings.SplitN(v, "'", 3)
	if len(parts) != 3 {
		return "", v
	}
	return parts[0], parts[2]
}

// percentDecode resolves %XX escapes, leaving broken escapes untouched.
func percentDecode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, s[i])
	}
	return out
}

func unhex(c byte) (byte, bool) {
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
