package dto

type LibraryBookRequest struct {
	BookID int64 `json:"book_id" binding:"required"`
}
