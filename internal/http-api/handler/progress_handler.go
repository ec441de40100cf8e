package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/service"
)

type ProgressHandler struct {
	progressService service.ProgressService
}

func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RegisterRoutes registers the progress-related routes
func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.GetAll)
	rg.GET("/:book_id", h.Get)
	rg.POST("/:book_id", h.Update)
}

func (h *ProgressHandler) GetAll(c *gin.Context) {
	progress, err := h.progressService.GetAll(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	list := make([]dto.ProgressResponse, 0, len(progress))
	for bookID, page := range progress {
		list = append(list, dto.ProgressResponse{BookID: bookID, Page: page})
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProgressHandler) Get(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	page, err := h.progressService.Get(c.Request.Context(), c.GetString("userID"), bookID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ProgressResponse{BookID: bookID, Page: page})
}

// Update accepts either a page number or a read-aloud playback position.
func (h *ProgressHandler) Update(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	ctx := c.Request.Context()

	switch {
	case req.Page != nil:
		if err := h.progressService.Update(ctx, userID, bookID, *req.Page); err != nil {
			h.respondUpdateError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ProgressResponse{BookID: bookID, Page: *req.Page})
	case req.SentenceIndex != nil && req.TotalSentences != nil:
		page, err := h.progressService.UpdateFromPlayback(ctx, userID, bookID, *req.SentenceIndex, *req.TotalSentences)
		if err != nil {
			h.respondUpdateError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ProgressResponse{BookID: bookID, Page: page})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "page or playback position required"})
	}
}

func (h *ProgressHandler) respondUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidPlayback):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
