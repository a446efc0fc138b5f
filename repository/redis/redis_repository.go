package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/gg-motors/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	GetInt(ctx context.Context, key string) (int64, error)
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type redis struct {
	// *redis.Client
}

// NewRepository returns a Redis Repository implementation. Without a
// configured client every method is a no-op.
func NewRepository() Repository {
	return &redis{}
}

// GetInt retrieves an integer counter, zero when the key is absent
func (r *redis) GetInt(ctx context.Context, key string) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	val, err := client.Get(ctx, key).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// incrWithTTL increments KEYS[1] and (re)arms its expiry in one atomic step;
// a counter left without a TTL gets one on its next increment.
var incrWithTTL = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// IncrWithTTL increments a counter and starts its expiry window on the
// first increment
func (r *redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	return incrCounter(ctx, client, key, ttl)
}

func incrCounter(ctx context.Context, c goredis.Scripter, key string, ttl time.Duration) (int64, error) {
	return incrWithTTL.Run(ctx, c, []string{key}, ttl.Milliseconds()).Int64()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
