package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"egyan/internal/http-api/dto"
)

// PreferenceRepository persists per-user display preferences as JSON.
// Preferences survive sessions, so no TTL.
type PreferenceRepository interface {
	Save(ctx context.Context, userID string, prefs *dto.Preferences) error
	Get(ctx context.Context, userID string) (*dto.Preferences, error)
}

type preferenceRedisRepo struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) PreferenceRepository {
	return &preferenceRedisRepo{client: client}
}

func preferenceKey(userID string) string {
	return fmt.Sprintf("prefs:user:%s", userID)
}

func (r *preferenceRedisRepo) Save(ctx context.Context, userID string, prefs *dto.Preferences) error {
	payload, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, preferenceKey(userID), payload, 0).Err()
}

// Get fails closed: a missing or malformed record is returned as nil so the
// caller falls back to defaults instead of trusting stale data.
func (r *preferenceRedisRepo) Get(ctx context.Context, userID string) (*dto.Preferences, error) {
	val, err := r.client.Get(ctx, preferenceKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var prefs dto.Preferences
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		return nil, nil
	}
	return &prefs, nil
}
