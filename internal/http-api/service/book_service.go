package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrAlreadyModerated = errors.New("book has already been moderated")
)

type BookService interface {
	Submit(ctx context.Context, authorID string, req dto.SubmitBookRequest) (*models.Book, error)
	Moderate(ctx context.Context, bookID int64, status, moderatorID string) (*models.Book, error)
	Catalog(ctx context.Context, query string) ([]dto.CategoryGroup, error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error)
	ListPending(ctx context.Context) ([]models.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

// Submit creates a pending book owned by the author. Approval is a separate
// publisher/admin action.
func (s *bookService) Submit(ctx context.Context, authorID string, req dto.SubmitBookRequest) (*models.Book, error) {
	book := &models.Book{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Tags:           req.Tags,
		AuthorID:       authorID,
		CoverImage:     req.CoverImage,
		ApprovalStatus: models.ApprovalPending,
		Price:          req.Price,
		TotalPages:     req.TotalPages,
		Content:        req.Content,
		BookFileName:   req.BookFileName,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Moderate transitions a pending book to approved or rejected exactly once.
// The status is immutable afterwards.
func (s *bookService) Moderate(ctx context.Context, bookID int64, status, moderatorID string) (*models.Book, error) {
	if status != models.ApprovalApproved && status != models.ApprovalRejected {
		return nil, errors.New("invalid approval status")
	}

	book, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return nil, ErrBookNotFound
	}
	if book.ApprovalStatus != models.ApprovalPending {
		return nil, ErrAlreadyModerated
	}

	book.ApprovalStatus = status
	book.PublisherID = &moderatorID
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Catalog lists approved books grouped by category, optionally filtered by a
// case-insensitive search over title, category and tags.
func (s *bookService) Catalog(ctx context.Context, query string) ([]dto.CategoryGroup, error) {
	books, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	grouped := make(map[string][]models.Book)
	for _, book := range books {
		if query != "" && !matchesQuery(book, query) {
			continue
		}
		grouped[book.Category] = append(grouped[book.Category], book)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	groups := make([]dto.CategoryGroup, 0, len(categories))
	for _, category := range categories {
		groups = append(groups, dto.CategoryGroup{Category: category, Books: grouped[category]})
	}
	return groups, nil
}

func matchesQuery(book models.Book, query string) bool {
	if strings.Contains(strings.ToLower(book.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Category), query) {
		return true
	}
	for _, tag := range book.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (s *bookService) Get(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID string) ([]models.Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *bookService) ListPending(ctx context.Context) ([]models.Book, error) {
	return s.repo.ListByStatus(ctx, models.ApprovalPending)
}
