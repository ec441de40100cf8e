package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RoleReader    = "reader"
	RoleAuthor    = "author"
	RolePublisher = "publisher"
	RoleAdmin     = "admin"
	RoleReviewer  = "reviewer"
	RoleGuest     = "guest"
)

// Subscription statuses
const (
	SubscriptionInactive = "inactive"
	SubscriptionTrial    = "trial"
	SubscriptionActive   = "active"
)

// ValidRole reports whether role is one of the platform roles.
func ValidRole(role string) bool {
	switch role {
	case RoleReader, RoleAuthor, RolePublisher, RoleAdmin, RoleReviewer, RoleGuest:
		return true
	}
	return false
}

// TrialEngagement tracks per-user activity counters during the trial period.
// Used for analytics display only.
type TrialEngagement struct {
	BooksDownloaded      int `gorm:"default:0" json:"booksDownloaded"`
	ReviewsWritten       int `gorm:"default:0" json:"reviewsWritten"`
	AISummariesGenerated int `gorm:"column:ai_summaries_generated;default:0" json:"aiSummariesGenerated"`
	Logins               int `gorm:"default:0" json:"logins"`
}

type User struct {
	ID                 string           `gorm:"primaryKey;type:uuid" json:"id"`
	Name               string           `gorm:"not null" json:"name"`
	Email              string           `gorm:"uniqueIndex;not null" json:"email"`
	Role               string           `gorm:"not null;default:'reader'" json:"role"`
	SubscriptionStatus string           `gorm:"not null;default:'inactive'" json:"subscription_status"`
	RegisteredDate     time.Time        `gorm:"autoCreateTime" json:"registered_date"`
	TrialStartDate     *time.Time       `json:"trial_start_date,omitempty"`
	TrialEngagement    *TrialEngagement `gorm:"embedded;embeddedPrefix:trial_" json:"trial_engagement,omitempty"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
