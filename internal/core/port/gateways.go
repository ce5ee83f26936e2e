package port

import (
	"context"
	"time"

	"viralizza/internal/core/domain"
)

// ViewProvider fetches the current view count of a post from the external
// measurement provider. Implementations return ErrViewsUnavailable (or any
// other error) when no usable number could be obtained.
type ViewProvider interface {
	FetchViews(ctx context.Context, platform domain.Platform, url string) (int64, error)
}

// Notifier relays engine events to the front end. Delivery is
// fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event) error
}

// LeaderboardPublisher pushes a projected leaderboard to the display
// surface.
type LeaderboardPublisher interface {
	PublishLeaderboard(ctx context.Context, lb domain.Leaderboard) error
}

// Locker provides a mutual exclusion scope shared by all processes running
// the poller. TryLock returns ok=false when the key is already held.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (lease Lease, ok bool, err error)
}

// Lease is a held lock. It expires on its own unless extended.
type Lease interface {
	// Extend resets the expiry to ttl from now. ok is false when the lease
	// already expired or was taken over.
	Extend(ctx context.Context, ttl time.Duration) (ok bool, err error)
	// Release frees the lock if it is still held by this lease. It is safe
	// to call more than once.
	Release()
}
