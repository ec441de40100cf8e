package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, role string) (*dto.RegisterResponse, error) {
	args := m.Called(ctx, name, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RegisterResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) EstablishSession(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*dto.SessionUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionUser), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	return sendJSON(router, "POST", path, payload)
}

func putJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	return sendJSON(router, "PUT", path, payload)
}

func sendJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_ReaderNeedsPlan(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", mock.Anything, "Ada", "ada@example.com", models.RoleReader).
		Return(&dto.RegisterResponse{
			User:                 &dto.SessionUser{ID: "u-1", Name: "Ada"},
			SubscriptionRequired: true,
		}, nil)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     models.RoleReader,
		Password: "ignored",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.RegisterResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.SubscriptionRequired)
	assert.Empty(t, response.AccessToken)
	mockAuthService.AssertExpectations(t)
}

func TestRegisterEndpoint_EmailInUse(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	mockAuthService.On("Register", mock.Anything, "Ada", "ada@example.com", models.RoleReader).
		Return(nil, service.ErrEmailInUse)

	w := postJSON(router, "/register", dto.RegisterRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  models.RoleReader,
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Account creation failed", response["error"])
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/register", handler.Register)

	w := postJSON(router, "/register", map[string]string{"name": "Ada"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginEndpoint_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", mock.Anything, "ada@example.com", "anything").
		Return(&dto.AuthResponse{
			AccessToken: "token-abc",
			TokenType:   "Bearer",
			User:        &dto.SessionUser{ID: "u-1"},
		}, nil)

	w := postJSON(router, "/login", dto.LoginRequest{Email: "ada@example.com", Password: "anything"})

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.AuthResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "token-abc", response.AccessToken)
	assert.Equal(t, "u-1", response.User.ID)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.POST("/login", handler.Login)

	mockAuthService.On("Login", mock.Anything, "nobody@example.com", "pw").
		Return(nil, service.ErrInvalidCredentials)

	w := postJSON(router, "/login", dto.LoginRequest{Email: "nobody@example.com", Password: "pw"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "invalid credentials", response["error"])
}

func TestMeEndpoint_SessionGone(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService)
	router := setupRouter()
	router.GET("/me", func(c *gin.Context) { c.Set("userID", "u-1") }, handler.Me)

	mockAuthService.On("Me", mock.Anything, "u-1").Return(nil, service.ErrSessionNotFound)

	req, _ := http.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
