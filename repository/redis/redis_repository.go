package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/vastu-shakti/cmd/redis"
)

// Repository defines the Redis operations used by the API.
type Repository interface {
	// IncrWithExpire bumps a fixed-window counter, starting the window on the first hit,
	// and returns the new count with the time left in the window.
	IncrWithExpire(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) IncrWithExpire(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, window, nil
	}

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		return count, window, nil
	}

	ttl, err := client.PTTL(ctx, key).Result()
	if err != nil {
		return 0, 0, err
	}
	// A key without TTL would never reset; repair it.
	if ttl < 0 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return 0, 0, err
		}
		ttl = window
	}
	return count, ttl, nil
}
