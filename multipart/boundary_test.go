package multipart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDelimiter(t *testing.T) {
	t.Parallel()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		d, err := newDelimiter("----WebKitFormBoundaryjdSFhcARk8fyGNy6")
		require.NoError(t, err)
		assert.Equal(t, "------WebKitFormBoundaryjdSFhcARk8fyGNy6", string(d.next))
		assert.Equal(t, "------WebKitFormBoundaryjdSFhcARk8fyGNy6--", string(d.last))
	})

	t.Run("trailing whitespace is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := newDelimiter("broken  ")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBoundary)
	})

	t.Run("empty token is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := newDelimiter("")
		assert.ErrorIs(t, err, ErrMalformedBoundary)
	})
}

func TestDelimiterMatch(t *testing.T) {
	t.Parallel()

	d, err := newDelimiter("foo")
	require.NoError(t, err)

	cases := []struct {
		name     string
		line     string
		terminal bool
		ok       bool
	}{
		{"continuing", "--foo", false, true},
		{"terminal", "--foo--", true, true},
		{"continuing with trailing whitespace", "--foo \t", false, true},
		{"lookalike prefix", "--foobar", false, false},
		{"lookalike with space", "--with boundary", false, false},
		{"body line", "hello", false, false},
		{"empty", "", false, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			terminal, ok := d.match([]byte(tc.line))
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.terminal, terminal)
		})
	}
}

func TestSkipPreamble(t *testing.T) {
	t.Parallel()

	d, err := newDelimiter("foo")
	require.NoError(t, err)

	t.Run("blank lines before the first boundary", func(t *testing.T) {
		t.Parallel()

		terminal, err := d.skipPreamble(splitterFor("\r\n\r\n--foo\r\n"))
		require.NoError(t, err)
		assert.False(t, terminal)
	})

	t.Run("non-blank preamble is discarded", func(t *testing.T) {
		t.Parallel()

		terminal, err := d.skipPreamble(splitterFor("this is the preamble\r\nignore me\r\n--foo\r\n"))
		require.NoError(t, err)
		assert.False(t, terminal)
	})

	t.Run("immediately terminal", func(t *testing.T) {
		t.Parallel()

		terminal, err := d.skipPreamble(splitterFor("--foo--"))
		require.NoError(t, err)
		assert.True(t, terminal)
	})

	t.Run("no boundary at all", func(t *testing.T) {
		t.Parallel()

		_, err := d.skipPreamble(splitterFor("just some bytes\r\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBoundary)
	})
}
