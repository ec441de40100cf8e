package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/service"
)

type PreferenceHandler struct {
	preferenceService service.PreferenceService
}

func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

func (h *PreferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("", h.Set)
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.preferenceService.Get(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferenceHandler) Set(c *gin.Context) {
	var prefs dto.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.preferenceService.Set(c.Request.Context(), c.GetString("userID"), prefs)
	if errors.Is(err, service.ErrInvalidPreferences) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prefs)
}
