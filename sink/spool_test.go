package sink_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/sink"
)

func TestSpoolInMemory(t *testing.T) {
	t.Parallel()

	s := sink.NewSpool(1024)
	defer s.Close()

	n, err := s.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.True(t, s.InMemory())

	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))
}

func TestSpoolRollover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := sink.NewSpool(16, sink.WithDir(dir))
	defer s.Close()

	payload := bytes.Repeat([]byte("abc"), 100)
	written := 0
	for written < len(payload) {
		end := min(written+10, len(payload))
		n, err := s.Write(payload[written:end])
		require.NoError(t, err)
		written += n
	}
	assert.False(t, s.InMemory(), "must have rolled over past the threshold")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".spool", filepath.Ext(entries[0].Name()))

	_, err = s.Seek(0, io.SeekStart)
	require.NoError(t, err)
	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSpoolCloseRemovesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := sink.NewSpool(0, sink.WithDir(dir))

	_, err := s.Write([]byte("spilled immediately"))
	require.NoError(t, err)
	assert.False(t, s.InMemory())

	require.NoError(t, s.Close())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file must be removed on close")

	require.NoError(t, s.Close(), "double close is a no-op")

	_, err = s.Write([]byte("x"))
	assert.ErrorIs(t, err, sink.ErrClosed)
}

func TestSpoolSeek(t *testing.T) {
	t.Parallel()

	s := sink.NewSpool(1024)
	defer s.Close()

	_, err := s.Write([]byte("0123456789"))
	require.NoError(t, err)

	pos, err := s.Seek(-4, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)

	got, err := io.ReadAll(s)
	require.NoError(t, err)
	assert.Equal(t, "6789", string(got))

	_, err = s.Seek(-1, io.SeekStart)
	assert.Error(t, err)
}

func TestDefaultFactory(t *testing.T) {
	t.Parallel()

	t.Run("small hint stays in memory", func(t *testing.T) {
		t.Parallel()

		s, err := sink.Default(100, "doc", "doc.txt", "text/plain")
		require.NoError(t, err)
		defer s.Close()

		reporter, ok := s.(sink.MemoryReporter)
		require.True(t, ok)
		assert.True(t, reporter.InMemory())
	})

	t.Run("large hint goes straight to disk", func(t *testing.T) {
		t.Parallel()

		s, err := sink.Default(sink.DefaultThreshold+1, "doc", "doc.bin", "application/octet-stream")
		require.NoError(t, err)
		defer s.Close()

		reporter, ok := s.(sink.MemoryReporter)
		require.True(t, ok)
		assert.False(t, reporter.InMemory())
	})
}
