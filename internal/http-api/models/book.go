package models

import "time"

// Approval statuses for the book publication workflow.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type Book struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	Category       string    `gorm:"not null;index" json:"category"`
	Tags           []string  `gorm:"serializer:json" json:"tags"`
	AuthorID       string    `gorm:"type:uuid;not null;index" json:"author_id"`
	PublisherID    *string   `gorm:"type:uuid" json:"publisher_id,omitempty"`
	CoverImage     *string   `json:"cover_image,omitempty"`
	UploadDate     time.Time `gorm:"autoCreateTime" json:"upload_date"`
	ApprovalStatus string    `gorm:"not null;default:'pending';index" json:"approval_status"`
	Price          *float64  `json:"price,omitempty"`
	TotalPages     *int      `json:"total_pages,omitempty"`
	Content        *string   `gorm:"type:text" json:"content,omitempty"`
	BookFileName   *string   `json:"book_file_name,omitempty"`

	// association
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Book) TableName() string {
	return "books"
}
