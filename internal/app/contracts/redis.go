package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, keys ...string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Increment(ctx context.Context, key string) (int64, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// DeleteIfValue and ExpireIfValue are atomic compare-and-act operations.
	// They return 1 when applied, 0 when key is missing, -1 when key holds another value.
	DeleteIfValue(ctx context.Context, key string, value interface{}) (int64, error)
	ExpireIfValue(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error)
}

// LockerService hands out Redis-backed leases. TryLock returns the token that
// must be presented to Unlock and Refresh.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
	Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error
}
