package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/service"
)

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// RegisterRoutes registers the public subscription routes. Checkout and skip
// are reachable without a session because they complete registration.
func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/plans", h.Plans)
	rg.POST("/checkout", h.Checkout)
	rg.POST("/skip", h.Skip)
}

func (h *SubscriptionHandler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/trial", h.TrialStatus)
}

func (h *SubscriptionHandler) Plans(c *gin.Context) {
	cycle := c.DefaultQuery("cycle", models.PlanMonthly)
	c.JSON(http.StatusOK, h.subscriptionService.Plans(cycle))
}

func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.subscriptionService.Checkout(c.Request.Context(), req)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, service.ErrPaymentFailed) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SubscriptionHandler) Skip(c *gin.Context) {
	var req dto.SkipSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.subscriptionService.Skip(c.Request.Context(), req.UserID)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) TrialStatus(c *gin.Context) {
	userID := c.GetString("userID")
	status, err := h.subscriptionService.TrialStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
