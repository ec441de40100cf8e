package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"egyan/internal/config"
	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionNotFound    = errors.New("session not found")
)

// Claims carried in the access token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionIssuer establishes an authenticated session for a user. It is the
// seam the subscription flow uses to log a registrant in once a plan has
// been chosen or skipped.
type SessionIssuer interface {
	EstablishSession(ctx context.Context, user *models.User) (*dto.AuthResponse, error)
}

type AuthService interface {
	SessionIssuer
	Register(ctx context.Context, name, email, role string) (*dto.RegisterResponse, error)
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Me(ctx context.Context, userID string) (*dto.SessionUser, error)
	Logout(ctx context.Context, userID string) error
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo    repository.UserRepository
	libraryRepo repository.LibraryRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	jwtExpiry   time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	libraryRepo repository.LibraryRepository,
	sessionRepo repository.SessionRepository,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		libraryRepo: libraryRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   cfg.JWTSecret,
		jwtExpiry:   cfg.JWTExpiry,
	}
}

// Register creates a new account. Guests start a trial immediately and
// admins are activated outright; both get a session. Readers, authors and
// publishers must pick a plan (or skip) before a session is established.
func (s *authService) Register(ctx context.Context, name, email, role string) (*dto.RegisterResponse, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailInUse
	}

	user := &models.User{
		Name:               name,
		Email:              email,
		Role:               role,
		SubscriptionStatus: models.SubscriptionInactive,
		RegisteredDate:     time.Now(),
	}

	switch role {
	case models.RoleAdmin:
		user.SubscriptionStatus = models.SubscriptionActive
	case models.RoleGuest:
		now := time.Now()
		user.SubscriptionStatus = models.SubscriptionTrial
		user.TrialStartDate = &now
		user.TrialEngagement = &models.TrialEngagement{Logins: 1}
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	if role == models.RoleAdmin || role == models.RoleGuest {
		auth, err := s.EstablishSession(ctx, user)
		if err != nil {
			return nil, err
		}
		return &dto.RegisterResponse{
			User:        auth.User,
			AccessToken: auth.AccessToken,
			ExpiresIn:   auth.ExpiresIn,
		}, nil
	}

	snapshot, err := s.buildSessionUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{User: snapshot, SubscriptionRequired: true}, nil
}

// Login looks a user up by exact email match. The password field is
// accepted but never verified; an unknown email and a wrong password are
// the same failure.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.SubscriptionStatus == models.SubscriptionTrial {
		if user.TrialEngagement == nil {
			user.TrialEngagement = &models.TrialEngagement{}
		}
		user.TrialEngagement.Logins++
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return s.EstablishSession(ctx, user)
}

// EstablishSession issues an access token and writes the serialized user
// snapshot into the session store.
func (s *authService) EstablishSession(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.buildSessionUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Save(ctx, snapshot); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwtExpiry.Seconds()),
		User:        snapshot,
	}, nil
}

// Me returns the stored session snapshot. A missing or malformed snapshot
// is a missing session; nothing is reconstructed from stale data.
func (s *authService) Me(ctx context.Context, userID string) (*dto.SessionUser, error) {
	snapshot, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSessionNotFound
	}
	return snapshot, nil
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	return s.sessionRepo.Delete(ctx, userID)
}

func (s *authService) buildSessionUser(ctx context.Context, user *models.User) (*dto.SessionUser, error) {
	purchased, err := s.libraryRepo.PurchasedBookIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	wishlist, err := s.libraryRepo.WishlistBookIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if purchased == nil {
		purchased = []int64{}
	}
	if wishlist == nil {
		wishlist = []int64{}
	}
	return &dto.SessionUser{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		SubscriptionStatus: user.SubscriptionStatus,
		RegisteredDate:     user.RegisteredDate,
		TrialStartDate:     user.TrialStartDate,
		TrialEngagement:    user.TrialEngagement,
		PurchasedBookIDs:   purchased,
		WishlistBookIDs:    wishlist,
	}, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
