package service

import (
	"context"
	"errors"

	"egyan/internal/http-api/repository"
)

var ErrInvalidPlayback = errors.New("invalid playback position")

type ProgressService interface {
	Update(ctx context.Context, userID string, bookID int64, page int) error
	UpdateFromPlayback(ctx context.Context, userID string, bookID int64, sentenceIndex, totalSentences int) (int, error)
	Get(ctx context.Context, userID string, bookID int64) (int, error)
	GetAll(ctx context.Context, userID string) (map[int64]int, error)
}

type progressService struct {
	repo     repository.ProgressRepository
	bookRepo repository.BookRepository
}

func NewProgressService(repo repository.ProgressRepository, bookRepo repository.BookRepository) ProgressService {
	return &progressService{repo: repo, bookRepo: bookRepo}
}

// Update overwrites the stored page unconditionally.
func (s *progressService) Update(ctx context.Context, userID string, bookID int64, page int) error {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return ErrBookNotFound
	}
	if page < 0 {
		page = 0
	}
	return s.repo.Save(ctx, userID, bookID, page)
}

// UpdateFromPlayback maps the spoken sentence index proportionally onto the
// book's page count and stores the result. The mapping is approximate; it
// only reaches the final page when playback completes.
func (s *progressService) UpdateFromPlayback(ctx context.Context, userID string, bookID int64, sentenceIndex, totalSentences int) (int, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return 0, ErrBookNotFound
	}
	if book.TotalPages == nil || *book.TotalPages <= 0 {
		return 0, ErrInvalidPlayback
	}
	if sentenceIndex < 0 || totalSentences <= 0 || sentenceIndex >= totalSentences {
		return 0, ErrInvalidPlayback
	}

	page := PageFromPlayback(sentenceIndex, totalSentences, *book.TotalPages)
	if err := s.repo.Save(ctx, userID, bookID, page); err != nil {
		return 0, err
	}
	return page, nil
}

// PageFromPlayback computes floor((sentenceIndex+1)/totalSentences * totalPages).
func PageFromPlayback(sentenceIndex, totalSentences, totalPages int) int {
	return (sentenceIndex + 1) * totalPages / totalSentences
}

func (s *progressService) Get(ctx context.Context, userID string, bookID int64) (int, error) {
	return s.repo.Get(ctx, userID, bookID)
}

func (s *progressService) GetAll(ctx context.Context, userID string) (map[int64]int, error) {
	return s.repo.GetAll(ctx, userID)
}
