package models

import "time"

// Billing cycles
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

type Subscription struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	Status    string    `gorm:"not null;default:'active'" json:"status"`
	Plan      string    `gorm:"not null" json:"plan"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
