package limits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/limits"
)

func TestCheckContentLength(t *testing.T) {
	t.Parallel()

	t.Run("unlimited accepts everything", func(t *testing.T) {
		t.Parallel()

		var l limits.Limits
		assert.NoError(t, l.CheckContentLength(1<<40))
	})

	t.Run("over the bound fails", func(t *testing.T) {
		t.Parallel()

		l := limits.Limits{MaxTotalBodyBytes: 4}
		err := l.CheckContentLength(23)
		require.Error(t, err)
		assert.ErrorIs(t, err, limits.ErrBodyTooLarge)
	})

	t.Run("exactly at the bound passes", func(t *testing.T) {
		t.Parallel()

		l := limits.Limits{MaxTotalBodyBytes: 23}
		assert.NoError(t, l.CheckContentLength(23))
	})

	t.Run("absent length passes", func(t *testing.T) {
		t.Parallel()

		l := limits.Limits{MaxTotalBodyBytes: 4}
		assert.NoError(t, l.CheckContentLength(-1))
	})
}

func TestAccountant(t *testing.T) {
	t.Parallel()

	t.Run("fails on the byte that crosses the bound", func(t *testing.T) {
		t.Parallel()

		a := limits.NewAccountant(limits.Limits{MaxInMemoryBytes: 7})
		require.NoError(t, a.Add(7))
		err := a.Add(1)
		require.Error(t, err)
		assert.ErrorIs(t, err, limits.ErrMemoryLimitExceeded)
		assert.Equal(t, int64(8), a.Used())
	})

	t.Run("zero limit never fails", func(t *testing.T) {
		t.Parallel()

		a := limits.NewAccountant(limits.Limits{})
		for i := 0; i < 100; i++ {
			require.NoError(t, a.Add(1 << 20))
		}
	})
}

func TestPartCounter(t *testing.T) {
	t.Parallel()

	c := limits.NewPartCounter(limits.Limits{MaxParts: 1})
	require.NoError(t, c.Inc())
	err := c.Inc()
	require.Error(t, err)
	assert.ErrorIs(t, err, limits.ErrPartCountExceeded)
	assert.Equal(t, int64(2), c.Seen())
}
