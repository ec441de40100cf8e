package service

import (
	"context"

	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
)

// PlatformStats is the admin dashboard overview.
type PlatformStats struct {
	TotalUsers         int64            `json:"total_users"`
	UsersByRole        map[string]int64 `json:"users_by_role"`
	TotalBooks         int64            `json:"total_books"`
	PendingBooks       int64            `json:"pending_books"`
	TotalReviews       int64            `json:"total_reviews"`
	TotalSubscriptions int64            `json:"total_subscriptions"`
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Stats(ctx context.Context) (*PlatformStats, error)
}

type userService struct {
	userRepo   repository.UserRepository
	bookRepo   repository.BookRepository
	reviewRepo repository.ReviewRepository
	subRepo    repository.SubscriptionRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	reviewRepo repository.ReviewRepository,
	subRepo repository.SubscriptionRepository,
) UserService {
	return &userService{
		userRepo:   userRepo,
		bookRepo:   bookRepo,
		reviewRepo: reviewRepo,
		subRepo:    subRepo,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List()
}

func (s *userService) Stats(ctx context.Context) (*PlatformStats, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	byRole := make(map[string]int64)
	for _, user := range users {
		byRole[user.Role]++
	}

	totalBooks, err := s.bookRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.bookRepo.ListByStatus(ctx, models.ApprovalPending)
	if err != nil {
		return nil, err
	}
	totalReviews, err := s.reviewRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalSubs, err := s.subRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformStats{
		TotalUsers:         int64(len(users)),
		UsersByRole:        byRole,
		TotalBooks:         totalBooks,
		PendingBooks:       int64(len(pending)),
		TotalReviews:       totalReviews,
		TotalSubscriptions: totalSubs,
	}, nil
}
