package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_TryLock(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	lease, ok, err := l.TryLock(ctx, "pass", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	assert.False(t, ok)

	_, ok, _ = l.TryLock(ctx, "other", time.Minute)
	assert.True(t, ok)

	lease.Release()
	lease.Release()
	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	assert.True(t, ok)
}

func TestLocker_Expires(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	stale, ok, _ := l.TryLock(ctx, "pass", time.Minute)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	require.True(t, ok)

	// the expired holder must neither free nor extend the new holder's lock
	ok, err := stale.Extend(ctx, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
	stale.Release()
	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	assert.False(t, ok)
}

func TestLocker_Extend(t *testing.T) {
	ctx := context.Background()
	l := NewLocker()
	now := time.Unix(1000, 0)
	l.now = func() time.Time { return now }

	lease, ok, _ := l.TryLock(ctx, "pass", time.Minute)
	require.True(t, ok)

	now = now.Add(50 * time.Second)
	ok, err := lease.Extend(ctx, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// past the original ttl but within the extended one
	now = now.Add(50 * time.Second)
	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	assert.False(t, ok)

	lease.Release()
	_, ok, _ = l.TryLock(ctx, "pass", time.Minute)
	assert.True(t, ok)
}
