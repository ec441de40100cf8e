package service

import (
	"context"

	"egyan/internal/http-api/repository"
)

type LibraryService interface {
	AddToWishlist(ctx context.Context, userID string, bookID int64) error
	RemoveFromWishlist(ctx context.Context, userID string, bookID int64) error
	Wishlist(ctx context.Context, userID string) ([]int64, error)
	Purchase(ctx context.Context, userID string, bookID int64) error
	Purchases(ctx context.Context, userID string) ([]int64, error)
	TrackDownload(ctx context.Context, userID string, bookID int64) error
}

type libraryService struct {
	repo       repository.LibraryRepository
	bookRepo   repository.BookRepository
	engagement EngagementTracker
}

func NewLibraryService(
	repo repository.LibraryRepository,
	bookRepo repository.BookRepository,
	engagement EngagementTracker,
) LibraryService {
	return &libraryService{repo: repo, bookRepo: bookRepo, engagement: engagement}
}

// AddToWishlist is idempotent: adding a book twice leaves it in the
// wishlist exactly once.
func (s *libraryService) AddToWishlist(ctx context.Context, userID string, bookID int64) error {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return ErrBookNotFound
	}
	return s.repo.AddToWishlist(ctx, userID, bookID)
}

func (s *libraryService) RemoveFromWishlist(ctx context.Context, userID string, bookID int64) error {
	return s.repo.RemoveFromWishlist(ctx, userID, bookID)
}

func (s *libraryService) Wishlist(ctx context.Context, userID string) ([]int64, error) {
	return s.repo.WishlistBookIDs(ctx, userID)
}

// Purchase is idempotent on the purchased set.
func (s *libraryService) Purchase(ctx context.Context, userID string, bookID int64) error {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return ErrBookNotFound
	}
	return s.repo.AddPurchase(ctx, userID, bookID)
}

func (s *libraryService) Purchases(ctx context.Context, userID string) ([]int64, error) {
	return s.repo.PurchasedBookIDs(ctx, userID)
}

// TrackDownload records a download against the trial engagement counters.
func (s *libraryService) TrackDownload(ctx context.Context, userID string, bookID int64) error {
	if _, err := s.bookRepo.FindByID(ctx, bookID); err != nil {
		return ErrBookNotFound
	}
	return s.engagement.TrackEngagement(ctx, userID, EngagementDownload)
}
