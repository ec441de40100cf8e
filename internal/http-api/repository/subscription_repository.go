package repository

import (
	"context"

	"gorm.io/gorm"

	"egyan/internal/http-api/models"
)

// SubscriptionRepository defines the interface for subscription records.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	ListByUser(ctx context.Context, userID string) ([]models.Subscription, error)
	Count(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Subscription{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
