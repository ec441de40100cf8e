package dto

import (
	"time"

	"egyan/internal/http-api/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	// Accepted for interface compatibility; the platform does not verify it.
	Password string `json:"password"`
}

// SessionUser is the serialized snapshot of the signed-in user kept in the
// session store. It carries the id sets that live in join tables so a reload
// reproduces the full record.
type SessionUser struct {
	ID                 string                  `json:"id"`
	Name               string                  `json:"name"`
	Email              string                  `json:"email"`
	Role               string                  `json:"role"`
	SubscriptionStatus string                  `json:"subscription_status"`
	RegisteredDate     time.Time               `json:"registered_date"`
	TrialStartDate     *time.Time              `json:"trial_start_date,omitempty"`
	TrialEngagement    *models.TrialEngagement `json:"trial_engagement,omitempty"`
	PurchasedBookIDs   []int64                 `json:"purchased_book_ids"`
	WishlistBookIDs    []int64                 `json:"wishlist_book_ids"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        *SessionUser `json:"user"`
}

// RegisterResponse reports whether the new account still has to pick a plan
// before a session is established.
type RegisterResponse struct {
	User                 *SessionUser `json:"user"`
	SubscriptionRequired bool         `json:"subscription_required"`
	AccessToken          string       `json:"access_token,omitempty"`
	ExpiresIn            int          `json:"expires_in,omitempty"`
}
