package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Incr(t *testing.T) {
	ctx := context.Background()
	window := time.Minute

	t.Run("counts hits within one window", func(t *testing.T) {
		s := NewMemoryStore()

		for want := int64(1); want <= 3; want++ {
			got, err := s.Incr(ctx, "1.2.3.4", window)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := NewMemoryStore()

		_, err := s.Incr(ctx, "1.2.3.4", window)
		require.NoError(t, err)
		got, err := s.Incr(ctx, "5.6.7.8", window)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		s := NewMemoryStore()

		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		orig := now
		now = func() time.Time { return base }
		defer func() { now = orig }()

		_, err := s.Incr(ctx, "1.2.3.4", window)
		require.NoError(t, err)
		_, err = s.Incr(ctx, "1.2.3.4", window)
		require.NoError(t, err)

		now = func() time.Time { return base.Add(window + time.Second) }
		got, err := s.Incr(ctx, "1.2.3.4", window)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got)
	})
}
