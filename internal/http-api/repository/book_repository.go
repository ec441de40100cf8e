package repository

import (
	"context"

	"egyan/internal/http-api/models"

	"gorm.io/gorm"
)

// BookRepository defines the interface for book catalog operations.
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	ListApproved(ctx context.Context) ([]models.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error)
	ListByStatus(ctx context.Context, status string) ([]models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Count(ctx context.Context) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) ListApproved(ctx context.Context) ([]models.Book, error) {
	return r.listWhere(ctx, "approval_status = ?", models.ApprovalApproved)
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error) {
	return r.listWhere(ctx, "author_id = ?", authorID)
}

func (r *bookRepository) ListByStatus(ctx context.Context, status string) ([]models.Book, error) {
	return r.listWhere(ctx, "approval_status = ?", status)
}

func (r *bookRepository) listWhere(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Where(query, args...).Order("upload_date").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Book{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
