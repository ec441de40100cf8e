package service

import (
	"context"
	"errors"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
)

var (
	ErrAlreadyReviewed = errors.New("user has already reviewed this book")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	Add(ctx context.Context, userID string, req dto.AddReviewRequest) (*models.Review, error)
	ListByBook(ctx context.Context, bookID int64) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

type reviewService struct {
	repo       repository.ReviewRepository
	bookRepo   repository.BookRepository
	engagement EngagementTracker
}

func NewReviewService(
	repo repository.ReviewRepository,
	bookRepo repository.BookRepository,
	engagement EngagementTracker,
) ReviewService {
	return &reviewService{repo: repo, bookRepo: bookRepo, engagement: engagement}
}

// Add creates one review per (user, book) pair. Duplicates are rejected by
// the database unique index, not by a read-then-write check.
func (s *reviewService) Add(ctx context.Context, userID string, req dto.AddReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, ErrBookNotFound
	}

	review := &models.Review{
		BookID:  req.BookID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}

	// Engagement counters are analytics display only; a failed increment
	// must not fail the review.
	_ = s.engagement.TrackEngagement(ctx, userID, EngagementReview)

	return review, nil
}

func (s *reviewService) ListByBook(ctx context.Context, bookID int64) ([]models.Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.repo.ListByUser(ctx, userID)
}
