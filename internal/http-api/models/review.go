package models

import "time"

type Review struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BookID     int64     `gorm:"not null;index;uniqueIndex:idx_review_user_book" json:"book_id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_book" json:"user_id"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	ReviewDate time.Time `gorm:"autoCreateTime" json:"review_date"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE;" json:"book,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
