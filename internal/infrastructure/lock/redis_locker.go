// Package lock serializes writers of the same service order across API instances.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotObtained = interfaces.ErrLockNotObtained

const (
	keyPrefix     = "lock:"
	retryInterval = 100 * time.Millisecond
)

type RedisLocker struct {
	locker *redislock.Client
	ttl    time.Duration
	wait   time.Duration
}

var _ interfaces.ILocker = (*RedisLocker)(nil)

// NewRedisLocker holds each lock for ttl and waits up to wait for a held key to be released.
func NewRedisLocker(rdb redis.UniversalClient, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{locker: redislock.New(rdb), ttl: ttl, wait: wait}
}

// NewRedisClient builds the client and checks the connection once.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (interfaces.UnlockFunc, error) {
	opts := &redislock.Options{}
	if l.wait > 0 {
		opts.RetryStrategy = redislock.LimitRetry(redislock.LinearBackoff(retryInterval), int(l.wait/retryInterval))
	}
	lk, err := l.locker.Obtain(ctx, keyPrefix+key, l.ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, fmt.Errorf("%w: %s", ErrLockNotObtained, key)
	}
	if err != nil {
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lk.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}
