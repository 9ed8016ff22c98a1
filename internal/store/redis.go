package store

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis keeps each table under the versioned key "salon:v1:<table>".
type Redis struct {
	client *redis.Client
}

var _ Adapter = (*Redis)(nil)

func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{client: redis.NewClient(opts)}, nil
}

func redisKey(table string) string {
	return "salon:v1:" + table
}

func (r *Redis) Get(ctx context.Context, table string) ([]byte, error) {
	data, err := r.client.Get(ctx, redisKey(table)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) PutAll(ctx context.Context, table string, data []byte) error {
	return r.client.Set(ctx, redisKey(table), data, 0).Err()
}
