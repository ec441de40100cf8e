package models

import "time"

// WishlistItem marks a book a user wants to read later. The (user, book)
// pair is unique so repeated adds keep the wishlist a set.
type WishlistItem struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_book" json:"user_id"`
	BookID  int64     `gorm:"not null;uniqueIndex:idx_wishlist_user_book" json:"book_id"`
	AddedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// Purchase records a book owned by a user.
type Purchase struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_purchase_user_book" json:"user_id"`
	BookID      int64     `gorm:"not null;uniqueIndex:idx_purchase_user_book" json:"book_id"`
	PurchasedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"purchased_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}
