package redis

import (
	"context"
	"errors"
	"scheduling-service/internal/app/contracts"
	"scheduling-service/internal/pkg/exceptions"

	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Both scripts return 1 when applied, 0 when the key is missing and -1 when
// the key holds another value.
var (
	deleteIfValueScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
return redis.call("DEL", KEYS[1])
`)
	expireIfValueScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current ~= ARGV[1] then
	return -1
end
return redis.call("PEXPIRE", KEYS[1], ARGV[2])
`)
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := r.client.Del(ctx, keys...).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

// Set stores value JSON-encoded; Get returns that JSON text.
func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns "" with a nil error when key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGetNoData(err, key)
	}
	return data, nil
}

func (r *redisRepository) Increment(ctx context.Context, key string) (int64, error) {
	value, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	return value, nil
}

// DeleteIfValue deletes key only while it still holds the JSON encoding of value.
func (r *redisRepository) DeleteIfValue(ctx context.Context, key string, value interface{}) (int64, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := deleteIfValueScript.Run(ctx, r.client, []string{key}, jsonValue).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisDelete(err)
	}
	return result, nil
}

// ExpireIfValue resets the TTL of key only while it still holds the JSON encoding of value.
func (r *redisRepository) ExpireIfValue(ctx context.Context, key string, value interface{}, exp time.Duration) (int64, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return 0, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := expireIfValueScript.Run(ctx, r.client, []string{key}, jsonValue, exp.Milliseconds()).Int64()
	if err != nil {
		return 0, exceptions.ErrRedisExpire(err)
	}
	return result, nil
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}
