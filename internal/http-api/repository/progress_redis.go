package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Reading progress is session-scoped state, not part of the durable user
// record, so it lives in Redis under a per-user hash with a TTL.
const progressTTL = 30 * 24 * time.Hour

// ProgressRepository maps book id to the reader's current page for a user.
type ProgressRepository interface {
	Save(ctx context.Context, userID string, bookID int64, page int) error
	Get(ctx context.Context, userID string, bookID int64) (int, error)
	GetAll(ctx context.Context, userID string) (map[int64]int, error)
}

type progressRedisRepo struct {
	client *redis.Client
}

func NewProgressRepository(client *redis.Client) ProgressRepository {
	return &progressRedisRepo{client: client}
}

func progressKey(userID string) string {
	return fmt.Sprintf("progress:user:%s", userID)
}

// Save overwrites the stored page unconditionally; readers may jump
// backwards.
func (r *progressRedisRepo) Save(ctx context.Context, userID string, bookID int64, page int) error {
	key := progressKey(userID)
	if err := r.client.HSet(ctx, key, strconv.FormatInt(bookID, 10), page).Err(); err != nil {
		return err
	}
	// Refresh the expiration on the whole hash
	return r.client.Expire(ctx, key, progressTTL).Err()
}

func (r *progressRedisRepo) Get(ctx context.Context, userID string, bookID int64) (int, error) {
	val, err := r.client.HGet(ctx, progressKey(userID), strconv.FormatInt(bookID, 10)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	page, err := strconv.Atoi(val)
	if err != nil {
		// malformed value: treat as absent
		return 0, nil
	}
	return page, nil
}

func (r *progressRedisRepo) GetAll(ctx context.Context, userID string) (map[int64]int, error) {
	fields, err := r.client.HGetAll(ctx, progressKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	progress := make(map[int64]int, len(fields))
	for field, val := range fields {
		bookID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		page, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		progress[bookID] = page
	}
	return progress, nil
}
