package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"egyan/internal/http-api/dto"
)

// SessionRepository keeps the serialized snapshot of the signed-in user in
// Redis with a TTL. Reloading it must reproduce the record that was stored.
type SessionRepository interface {
	Save(ctx context.Context, user *dto.SessionUser) error
	Get(ctx context.Context, userID string) (*dto.SessionUser, error)
	Delete(ctx context.Context, userID string) error
}

type sessionRedisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &sessionRedisRepo{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func (r *sessionRedisRepo) Save(ctx context.Context, user *dto.SessionUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(user.ID), payload, r.ttl).Err()
}

// Get validates the persisted JSON and fails closed: a missing, malformed
// or mismatched record is reported as no session at all.
func (r *sessionRedisRepo) Get(ctx context.Context, userID string) (*dto.SessionUser, error) {
	val, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user dto.SessionUser
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, nil
	}
	if user.ID != userID {
		return nil, nil
	}
	return &user, nil
}

func (r *sessionRedisRepo) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}
