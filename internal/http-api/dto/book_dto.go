package dto

import "egyan/internal/http-api/models"

type SubmitBookRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Tags         []string `json:"tags"`
	CoverImage   *string  `json:"cover_image"`
	Price        *float64 `json:"price"`
	TotalPages   *int     `json:"total_pages"`
	Content      *string  `json:"content"`
	BookFileName *string  `json:"book_file_name"`
}

type ModerateBookRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type BookIDRequest struct {
	BookID int64 `uri:"book_id" binding:"required"`
}

// CategoryGroup is one shelf of the reader catalog.
type CategoryGroup struct {
	Category string        `json:"category"`
	Books    []models.Book `json:"books"`
}
