package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
)

func TestAddReview_Success(t *testing.T) {
	repo := new(MockReviewRepository)
	bookRepo := new(MockBookRepository)
	engagement := new(MockEngagementTracker)
	svc := NewReviewService(repo, bookRepo, engagement)

	bookRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Book{ID: 3}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	engagement.On("TrackEngagement", mock.Anything, "u-1", EngagementReview).Return(nil)

	review, err := svc.Add(context.Background(), "u-1", dto.AddReviewRequest{
		BookID:  3,
		Rating:  5,
		Comment: "Loved it",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), review.BookID)
	assert.Equal(t, "u-1", review.UserID)
	engagement.AssertExpectations(t)
}

func TestAddReview_DuplicateRejected(t *testing.T) {
	repo := new(MockReviewRepository)
	bookRepo := new(MockBookRepository)
	engagement := new(MockEngagementTracker)
	svc := NewReviewService(repo, bookRepo, engagement)

	bookRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Book{ID: 3}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_review_user_book"})

	_, err := svc.Add(context.Background(), "u-1", dto.AddReviewRequest{BookID: 3, Rating: 4})

	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	engagement.AssertNotCalled(t, "TrackEngagement", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddReview_RatingOutOfRange(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, new(MockBookRepository), new(MockEngagementTracker))

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Add(context.Background(), "u-1", dto.AddReviewRequest{BookID: 3, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddReview_UnknownBook(t *testing.T) {
	repo := new(MockReviewRepository)
	bookRepo := new(MockBookRepository)
	svc := NewReviewService(repo, bookRepo, new(MockEngagementTracker))

	bookRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, assert.AnError)

	_, err := svc.Add(context.Background(), "u-1", dto.AddReviewRequest{BookID: 99, Rating: 3})

	assert.ErrorIs(t, err, ErrBookNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddReview_EngagementFailureDoesNotFailReview(t *testing.T) {
	repo := new(MockReviewRepository)
	bookRepo := new(MockBookRepository)
	engagement := new(MockEngagementTracker)
	svc := NewReviewService(repo, bookRepo, engagement)

	bookRepo.On("FindByID", mock.Anything, int64(3)).Return(&models.Book{ID: 3}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).Return(nil)
	engagement.On("TrackEngagement", mock.Anything, "u-1", EngagementReview).Return(assert.AnError)

	review, err := svc.Add(context.Background(), "u-1", dto.AddReviewRequest{BookID: 3, Rating: 4})

	assert.NoError(t, err)
	assert.NotNil(t, review)
}
