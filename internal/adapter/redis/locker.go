package redisadapter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"viralizza/internal/core/port"
)

// releaseScript deletes the lock only if it is still held by the caller's
// token, so an expired lock taken over by another process is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

// extendScript resets the ttl of a lock still held by the caller's token.
var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

var _ port.Locker = (*Locker)(nil)

// Locker implements port.Locker with SET NX and a TTL.
type Locker struct {
	rc     *redis.Client
	prefix string
	logger *slog.Logger
}

// NewLocker returns a Locker whose keys are namespaced by prefix.
func NewLocker(rc *redis.Client, prefix string, logger *slog.Logger) *Locker {
	return &Locker{rc: rc, prefix: prefix, logger: logger}
}

// TryLock acquires key for at most ttl unless the returned lease is
// extended.
func (l *Locker) TryLock(ctx context.Context, key string, ttl time.Duration) (port.Lease, bool, error) {
	fullKey := l.prefix + ":lock:" + key
	token := uuid.NewString()
	ok, err := l.rc.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil || !ok {
		return nil, false, err
	}
	return &lease{locker: l, key: fullKey, token: token}, true, nil
}

type lease struct {
	locker *Locker
	key    string
	token  string
	once   sync.Once
}

func (ls *lease) Extend(ctx context.Context, ttl time.Duration) (bool, error) {
	n, err := extendScript.Run(ctx, ls.locker.rc, []string{ls.key}, ls.token, ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (ls *lease) Release() {
	ls.once.Do(func() {
		// release even when the caller's context is already cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, ls.locker.rc, []string{ls.key}, ls.token).Err(); err != nil {
			ls.locker.logger.Warn("lock release failed", slog.String("key", ls.key), slog.Any("error", err))
		}
	})
}
