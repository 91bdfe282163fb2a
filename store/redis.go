package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 500 * time.Millisecond

// RedisStore keeps the cache in Redis so several instances share one local
// tier. Values never expire; the cache is refreshed wholesale by reads.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (r *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		// Redis reports a full instance as "OOM command not allowed".
		if strings.Contains(err.Error(), "OOM") {
			return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return err
	}
	return nil
}

func (r *RedisStore) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	r.client.Del(ctx, key)
}
