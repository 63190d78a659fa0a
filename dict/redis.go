// Copyright 2026 Abydos Authors.
// All rights reserved.

package dict

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Redis is a Dict backed by a Redis set.
type Redis struct {
	client *redis.Client
	key    string
}

var _ Dict = (*Redis)(nil)

// NewRedis returns a Redis dict storing names in the set named key.
func NewRedis(client *redis.Client, key string) *Redis {
	return &Redis{client: client, key: key}
}

func (r *Redis) Names(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *Redis) Add(ctx context.Context, name string) error {
	return r.client.SAdd(ctx, r.key, name).Err()
}

func (r *Redis) Remove(ctx context.Context, name string) error {
	return r.client.SRem(ctx, r.key, name).Err()
}
