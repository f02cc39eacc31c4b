package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "kuverta:settings:"

// Redis stores each named mapping as a Redis hash, letting several processes
// share one token. A zero TTL keeps entries until they are deleted;
// otherwise the whole hash expires TTL after its last merge.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) key(name string) string {
	return redisKeyPrefix + name
}

func (r *Redis) Get(ctx context.Context, name string) (map[string]string, error) {
	values, err := r.rdb.HGetAll(ctx, r.key(name)).Result()
	if err != nil {
		return nil, fmt.Errorf("tokenstore: redis get %q: %w", name, err)
	}
	return values, nil
}

func (r *Redis) Merge(ctx context.Context, name string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	flat := make([]any, 0, 2*len(values))
	for k, v := range values {
		flat = append(flat, k, v)
	}
	if err := r.rdb.HSet(ctx, r.key(name), flat...).Err(); err != nil {
		return fmt.Errorf("tokenstore: redis merge %q: %w", name, err)
	}
	if r.ttl > 0 {
		if err := r.rdb.Expire(ctx, r.key(name), r.ttl).Err(); err != nil {
			return fmt.Errorf("tokenstore: redis expire %q: %w", name, err)
		}
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, name string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.rdb.HDel(ctx, r.key(name), keys...).Err(); err != nil {
		return fmt.Errorf("tokenstore: redis delete %q: %w", name, err)
	}
	return nil
}
