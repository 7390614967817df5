package repository

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/redis/go-redis/v9"
)

type lookup struct {
	value string
	found bool
}

// redisClient is the subset of *redis.Client the cache uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

type RedisCache struct {
	client      redisClient
	retryConfig retry.Config
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return newRedisCache(rdb)
}

func newRedisCache(client redisClient) *RedisCache {
	return &RedisCache{
		client: client,
		retryConfig: retry.Config{
			MaxAttempts:        3,
			InitialDelay:       10 * time.Millisecond,
			BackoffPolicy:      retry.BackoffExponential,
			NonRetryableErrors: []error{redis.Nil},
		},
	}
}

// Get returns the cached value for key. A missing key is not an error.
func (r *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	retryer := retry.New[lookup](r.retryConfig)

	res, err := retryer.Do(ctx, func(ctx context.Context) (lookup, error) {
		val, err := r.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return lookup{}, nil
		}
		if err != nil {
			return lookup{}, err
		}
		return lookup{value: val, found: true}, nil
	})
	if err != nil {
		return "", false, err
	}
	return res.value, res.found, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	retryer := retry.New[struct{}](r.retryConfig)

	_, err := retryer.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.client.Set(ctx, key, value, ttl).Err()
	})
	return err
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
