package multipart_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/multipart"
)

func TestLineSplitter(t *testing.T) {
	t.Parallel()

	collect := func(t *testing.T, s *multipart.LineSplitter) (lines []string, terms []string) {
		t.Helper()
		for {
			line, term, err := s.Next()
			if err == io.EOF {
				return lines, terms
			}
			require.NoError(t, err)
			lines = append(lines, string(line))
			terms = append(terms, string(term))
		}
	}

	t.Run("mixed terminators", func(t *testing.T) {
		t.Parallel()

		input := "a\nb\rc\r\nd"
		s := multipart.NewLineSplitter(strings.NewReader(input), int64(len(input)))
		lines, terms := collect(t, s)
		assert.Equal(t, []string{"a", "b", "c", "d"}, lines)
		assert.Equal(t, []string{"\n", "\r", "\r\n", ""}, terms)
	})

	t.Run("carriage return at end of input", func(t *testing.T) {
		t.Parallel()

		s := multipart.NewLineSplitter(strings.NewReader("foo\r"), 4)
		line, term, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "foo", string(line))
		assert.Equal(t, "\r", string(term))

		_, _, err = s.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("unterminated final line is yielded once", func(t *testing.T) {
		t.Parallel()

		s := multipart.NewLineSplitter(strings.NewReader("no end"), 6)
		line, term, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "no end", string(line))
		assert.Empty(t, term)

		_, _, err = s.Next()
		assert.Equal(t, io.EOF, err, "must not wait for a terminator that will not arrive")
	})

	t.Run("never reads past the declared length", func(t *testing.T) {
		t.Parallel()

		s := multipart.NewLineSplitter(strings.NewReader("abcdef\r\n"), 3)
		line, term, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, "abc", string(line))
		assert.Empty(t, term)

		_, _, err = s.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("absent length means empty source", func(t *testing.T) {
		t.Parallel()

		s := multipart.NewLineSplitter(strings.NewReader("data"), -1)
		_, _, err := s.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("long line is chunked at the cap", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("x", 70000)
		s := multipart.NewLineSplitter(strings.NewReader(input), int64(len(input)))

		line, term, err := s.Next()
		require.NoError(t, err)
		assert.Len(t, line, 64<<10)
		assert.Empty(t, term)

		line, term, err = s.Next()
		require.NoError(t, err)
		assert.Len(t, line, 70000-64<<10)
		assert.Empty(t, term)

		_, _, err = s.Next()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("uncapped splitter yields one large line", func(t *testing.T) {
		t.Parallel()

		input := strings.Repeat("x", 70000)
		s := multipart.NewLineSplitter(strings.NewReader(input), int64(len(input)))
		s.Uncap()

		line, term, err := s.Next()
		require.NoError(t, err)
		assert.Len(t, line, 70000)
		assert.Empty(t, term)
	})
}
