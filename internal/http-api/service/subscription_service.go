package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
)

// TrialDays is the length of the time-boxed trial.
const TrialDays = 15

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidPlan   = errors.New("invalid plan")
	ErrPaymentFailed = errors.New("payment failed")
)

// EngagementAction names the trial counters.
type EngagementAction string

const (
	EngagementDownload  EngagementAction = "download"
	EngagementReview    EngagementAction = "review"
	EngagementAISummary EngagementAction = "ai_summary"
)

// EngagementTracker increments trial engagement counters. Actions taken by
// users outside the trial state are ignored.
type EngagementTracker interface {
	TrackEngagement(ctx context.Context, userID string, action EngagementAction) error
}

type SubscriptionService interface {
	EngagementTracker
	Plans(cycle string) []dto.PlanResponse
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.AuthResponse, error)
	Skip(ctx context.Context, userID string) (*dto.AuthResponse, error)
	TrialStatus(ctx context.Context, userID string) (*dto.TrialStatusResponse, error)
}

type subscriptionService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
	payments PaymentProcessor
	sessions SessionIssuer
	now      func() time.Time
}

func NewSubscriptionService(
	userRepo repository.UserRepository,
	subRepo repository.SubscriptionRepository,
	payments PaymentProcessor,
	sessions SessionIssuer,
) SubscriptionService {
	return &subscriptionService{
		userRepo: userRepo,
		subRepo:  subRepo,
		payments: payments,
		sessions: sessions,
		now:      time.Now,
	}
}

// Plans returns the catalog of purchasable plans for the billing cycle.
func (s *subscriptionService) Plans(cycle string) []dto.PlanResponse {
	readerPlan := dto.PlanResponse{
		Name:        "Plus Pack Monthly",
		Price:       849,
		Cycle:       models.PlanMonthly,
		Description: "Read without limits",
		Features: []string{
			"Unlimited reading access",
			"Purchase and own books",
			"Write and view reviews",
			"Early access to new arrivals",
		},
		IsPopular: true,
	}
	if cycle == models.PlanYearly {
		readerPlan.Name = "Plus Pack Yearly"
		readerPlan.Price = 8499
		readerPlan.Cycle = models.PlanYearly
		readerPlan.Description = "Best value for avid readers"
	}

	proPlan := dto.PlanResponse{
		Name:        "Pro Pass",
		Price:       999,
		Cycle:       models.PlanYearly,
		Description: "For authors and publishers.",
		Features: []string{
			"AI-powered book recommendations",
			"Adaptive UI & personalized dashboards",
			"Automated review moderation with NLP",
			"ML-based insights on trends & engagement",
		},
	}

	return []dto.PlanResponse{readerPlan, proPlan}
}

// Checkout charges the plan through the payment processor, records exactly
// one subscription and activates the user, then logs them in.
func (s *subscriptionService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if req.Cycle != models.PlanMonthly && req.Cycle != models.PlanYearly {
		return nil, ErrInvalidPlan
	}

	item := PaymentItem{
		Type:        "Subscription",
		Name:        req.PlanName,
		Description: fmt.Sprintf("Billed %s", req.Cycle),
		Price:       req.Price,
	}
	if err := s.payments.Process(ctx, user.ID, item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	start := s.now()
	end := start
	if req.Cycle == models.PlanYearly {
		end = start.AddDate(1, 0, 0)
	}
	sub := &models.Subscription{
		UserID:    user.ID,
		StartDate: start,
		EndDate:   end,
		Status:    models.SubscriptionActive,
		Plan:      req.Cycle,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	user.SubscriptionStatus = models.SubscriptionActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.sessions.EstablishSession(ctx, user)
}

// Skip places the registrant in the trial state with a fresh engagement
// record and logs them in. The trial clock starts now.
func (s *subscriptionService) Skip(ctx context.Context, userID string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	now := s.now()
	user.SubscriptionStatus = models.SubscriptionTrial
	user.TrialStartDate = &now
	user.TrialEngagement = &models.TrialEngagement{Logins: 1}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.sessions.EstablishSession(ctx, user)
}

// TrialStatus computes the remaining trial days. Expiry never flips the
// stored status; a lapsed trial simply stops showing the banner.
func (s *subscriptionService) TrialStatus(ctx context.Context, userID string) (*dto.TrialStatusResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.SubscriptionStatus != models.SubscriptionTrial || user.TrialStartDate == nil {
		return &dto.TrialStatusResponse{}, nil
	}

	trialEnd := user.TrialStartDate.AddDate(0, 0, TrialDays)
	remaining := trialEnd.Sub(s.now())
	remainingDays := int((remaining + 24*time.Hour - 1) / (24 * time.Hour))
	if remainingDays <= 0 {
		return &dto.TrialStatusResponse{}, nil
	}
	return &dto.TrialStatusResponse{RemainingDays: remainingDays, ShowBanner: true}, nil
}

// TrackEngagement increments exactly one counter and only while the user is
// in the trial state; any other status is a no-op.
func (s *subscriptionService) TrackEngagement(ctx context.Context, userID string, action EngagementAction) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return ErrUserNotFound
	}
	if user.SubscriptionStatus != models.SubscriptionTrial {
		return nil
	}

	if user.TrialEngagement == nil {
		user.TrialEngagement = &models.TrialEngagement{}
	}
	switch action {
	case EngagementDownload:
		user.TrialEngagement.BooksDownloaded++
	case EngagementReview:
		user.TrialEngagement.ReviewsWritten++
	case EngagementAISummary:
		user.TrialEngagement.AISummariesGenerated++
	default:
		return fmt.Errorf("unknown engagement action: %s", action)
	}

	return s.userRepo.Update(user)
}
