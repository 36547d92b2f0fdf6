// Package redislock provides a best-effort mutual exclusion lock across
// replicas, used to run each scheduler tick on one instance only.
package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotAcquired means another holder owns the lock.
var ErrNotAcquired = errors.New("redislock: not acquired")

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker acquires named locks with SET NX PX.
type Locker struct {
	rdb    redis.UniversalClient
	prefix string
}

// New creates a Locker whose keys are "<prefix>:<name>".
func New(rdb redis.UniversalClient, prefix string) *Locker {
	return &Locker{rdb: rdb, prefix: prefix}
}

// Lock is a held lock.
type Lock struct {
	l     *Locker
	key   string
	token string
}

// Acquire takes the named lock for ttl or returns ErrNotAcquired.
func (l *Locker) Acquire(ctx context.Context, name string, ttl time.Duration) (*Lock, error) {
	key := l.prefix + ":" + name
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redislock: acquire %s: %w", key, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}
	return &Lock{l: l, key: key, token: token}, nil
}

// Release drops the lock if it is still ours.
func (k *Lock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, k.l.rdb, []string{k.key}, k.token).Err(); err != nil {
		return fmt.Errorf("redislock: release %s: %w", k.key, err)
	}
	return nil
}
