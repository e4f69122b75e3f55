package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/infrastructure/database"
)

const (
	lockTTL      = 5 * time.Second
	lockWait     = 2 * time.Second
	lockInterval = 50 * time.Millisecond
)

// RedisLoginLock serializes the count-evict-insert sequence of a login
// per user with a SETNX lease. The session cap is a soft control, so a
// lock that cannot be obtained (Redis down, contention past the wait
// window) lets the login proceed unlocked rather than fail.
type RedisLoginLock struct {
	redis *database.RedisClient
}

// NewRedisLoginLock creates a new login lock backed by Redis.
func NewRedisLoginLock(redis *database.RedisClient) domain.LoginLock {
	return &RedisLoginLock{redis: redis}
}

// Acquire implements domain.LoginLock
func (l *RedisLoginLock) Acquire(ctx context.Context, userID uint) (func(), bool) {
	key := loginLockKey(userID)
	deadline := time.Now().Add(lockWait)

	for {
		ok, err := database.SetNX(ctx, l.redis, key, 1, lockTTL)
		if err != nil {
			return func() {}, false
		}
		if ok {
			return func() { l.redis.Del(context.Background(), key) }, true
		}
		if time.Now().After(deadline) {
			return func() {}, false
		}

		select {
		case <-ctx.Done():
			return func() {}, false
		case <-time.After(lockInterval):
		}
	}
}

func loginLockKey(userID uint) string {
	return fmt.Sprintf("login_lock:%d", userID)
}

// NoopLoginLock is used when Redis is not configured; every login runs
// with the baseline soft-cap behavior.
type NoopLoginLock struct{}

// Acquire implements domain.LoginLock
func (NoopLoginLock) Acquire(context.Context, uint) (func(), bool) {
	return func() {}, false
}
