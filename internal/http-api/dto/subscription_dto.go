package dto

type CheckoutRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	PlanName string `json:"plan_name" binding:"required"`
	Cycle    string `json:"cycle" binding:"required,oneof=monthly yearly"`
	Price    int    `json:"price" binding:"required"`
}

type SkipSubscriptionRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type PlanResponse struct {
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Cycle       string   `json:"cycle"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsPopular   bool     `json:"is_popular"`
}

// TrialStatusResponse drives the trial banner: the banner disappears once
// the remaining days reach zero even though the stored status is unchanged.
type TrialStatusResponse struct {
	RemainingDays int  `json:"remaining_days"`
	ShowBanner    bool `json:"show_banner"`
}
