// Package redisstate implements repository.StateRepository on Redis.
package redisstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jkrahl/educahub-backend/internal/repository"
)

const (
	resetTokenKey   = "reset:"
	announcementKey = "announcement"
)

// RedisStateRepository holds reset tokens and the announcement banner in
// Redis. All keys carry the configured prefix so several deployments can share
// an instance.
type RedisStateRepository struct {
	client *redis.Client
	prefix string
}

func NewRedisStateRepository(client *redis.Client, keyPrefix string) *RedisStateRepository {
	if client == nil {
		panic("redis client cannot be nil for RedisStateRepository")
	}
	return &RedisStateRepository{client: client, prefix: keyPrefix}
}

func (r *RedisStateRepository) key(parts ...string) string {
	k := r.prefix
	for _, p := range parts {
		k += p
	}
	return k
}

func (r *RedisStateRepository) SaveResetToken(ctx context.Context, token, email string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(resetTokenKey, token), email, ttl).Err(); err != nil {
		return fmt.Errorf("redis: save reset token: %w", err)
	}
	return nil
}

// ConsumeResetToken uses GETDEL so that fetch and invalidation are a single
// atomic step: two concurrent submissions of the same token cannot both
// succeed.
func (r *RedisStateRepository) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	email, err := r.client.GetDel(ctx, r.key(resetTokenKey, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrTokenNotFound
		}
		return "", fmt.Errorf("redis: consume reset token: %w", err)
	}
	return email, nil
}

func (r *RedisStateRepository) GetAnnouncement(ctx context.Context) (string, error) {
	text, err := r.client.Get(ctx, r.key(announcementKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis: get announcement: %w", err)
	}
	return text, nil
}

func (r *RedisStateRepository) SetAnnouncement(ctx context.Context, text string) error {
	if err := r.client.Set(ctx, r.key(announcementKey), text, 0).Err(); err != nil {
		return fmt.Errorf("redis: set announcement: %w", err)
	}
	return nil
}
