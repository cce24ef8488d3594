package cache

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "firedrive:"

var _ Invalidator = (*Redis)(nil)

// Redis invalidates cached listings by deleting every key of the group's
// namespace.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client}
}

func (r *Redis) Invalidate(ctx context.Context, group string) error {
	pattern := keyPrefix + group + ":*"

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	logrus.Infof("invalidated %d cached %s entries", len(keys), group)

	return nil
}
