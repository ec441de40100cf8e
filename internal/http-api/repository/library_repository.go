package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"egyan/internal/http-api/models"
)

// LibraryRepository covers per-user wishlist and purchase sets.
type LibraryRepository interface {
	AddToWishlist(ctx context.Context, userID string, bookID int64) error
	RemoveFromWishlist(ctx context.Context, userID string, bookID int64) error
	WishlistBookIDs(ctx context.Context, userID string) ([]int64, error)
	AddPurchase(ctx context.Context, userID string, bookID int64) error
	PurchasedBookIDs(ctx context.Context, userID string) ([]int64, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

// AddToWishlist is idempotent: the (user, book) unique index plus
// ON CONFLICT DO NOTHING keeps the wishlist a set.
func (r *libraryRepository) AddToWishlist(ctx context.Context, userID string, bookID int64) error {
	item := models.WishlistItem{UserID: userID, BookID: bookID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
}

func (r *libraryRepository) RemoveFromWishlist(ctx context.Context, userID string, bookID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.WishlistItem{}).Error
}

func (r *libraryRepository) WishlistBookIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("added_at").
		Pluck("book_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// AddPurchase is idempotent in the same way as AddToWishlist.
func (r *libraryRepository) AddPurchase(ctx context.Context, userID string, bookID int64) error {
	item := models.Purchase{UserID: userID, BookID: bookID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
}

func (r *libraryRepository) PurchasedBookIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Order("purchased_at").
		Pluck("book_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
