package memory

import (
	"context"
	"sync"
	"time"

	"viralizza/internal/core/port"
)

var _ port.Locker = (*Locker)(nil)

type holder struct {
	token uint64
	exp   time.Time
}

// Locker is a process-local port.Locker for single-instance deployments.
// Held keys expire after their ttl like the redis implementation.
type Locker struct {
	mu        sync.Mutex
	held      map[string]holder
	lastToken uint64
	now       func() time.Time
}

// NewLocker returns an empty Locker.
func NewLocker() *Locker {
	return &Locker{held: make(map[string]holder), now: time.Now}
}

// TryLock takes key for ttl unless an unexpired holder has it.
func (l *Locker) TryLock(_ context.Context, key string, ttl time.Duration) (port.Lease, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if h, ok := l.held[key]; ok && now.Before(h.exp) {
		return nil, false, nil
	}
	l.lastToken++
	l.held[key] = holder{token: l.lastToken, exp: now.Add(ttl)}
	return &lease{locker: l, key: key, token: l.lastToken}, true, nil
}

type lease struct {
	locker *Locker
	key    string
	token  uint64
	once   sync.Once
}

func (ls *lease) Extend(_ context.Context, ttl time.Duration) (bool, error) {
	l := ls.locker
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	h, ok := l.held[ls.key]
	if !ok || h.token != ls.token || !now.Before(h.exp) {
		return false, nil
	}
	h.exp = now.Add(ttl)
	l.held[ls.key] = h
	return true, nil
}

func (ls *lease) Release() {
	ls.once.Do(func() {
		l := ls.locker
		l.mu.Lock()
		defer l.mu.Unlock()
		if h, ok := l.held[ls.key]; ok && h.token == ls.token {
			delete(l.held, ls.key)
		}
	})
}
