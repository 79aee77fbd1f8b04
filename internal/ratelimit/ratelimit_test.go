package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterFixedWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	l := NewMemoryLimiter(3, 15*time.Minute)
	l.now = func() time.Time { return now }

	for i := 1; i <= 3; i++ {
		res, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	other, err := l.Allow(ctx, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	now = now.Add(15 * time.Minute)
	res, err = l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
	assert.Equal(t, 15*time.Minute, res.ResetIn)
}

func TestResult(t *testing.T) {
	assert.Equal(t, Result{Allowed: true, Limit: 100, Remaining: 0, ResetIn: time.Second}, result(100, 100, time.Second))
	assert.Equal(t, Result{Allowed: false, Limit: 100, Remaining: 0}, result(101, 100, 0))
}

func TestMemoryLimiterSweepsOncePerWindow(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start

	l := NewMemoryLimiter(3, time.Minute)
	l.now = func() time.Time { return now }

	hit := func(at time.Duration, key string) {
		t.Helper()
		now = start.Add(at)
		res, err := l.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}

	hit(0, "a")
	hit(10*time.Second, "b")
	assert.Len(t, l.buckets, 2)

	hit(65*time.Second, "c")
	assert.Len(t, l.buckets, 2, "a expired and is swept")

	// b has expired too, but the last sweep is younger than a window
	hit(75*time.Second, "d")
	assert.Len(t, l.buckets, 3)

	hit(130*time.Second, "e")
	assert.Len(t, l.buckets, 2)
	assert.Contains(t, l.buckets, "d")
	assert.Contains(t, l.buckets, "e")
}
