package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/service"
)

type LibraryHandler struct {
	libraryService service.LibraryService
}

func NewLibraryHandler(libraryService service.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

// RegisterRoutes registers the library routes; all require a session.
func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/wishlist", h.Wishlist)
	rg.POST("/wishlist", h.AddToWishlist)
	rg.DELETE("/wishlist/:book_id", h.RemoveFromWishlist)
	rg.GET("/purchases", h.Purchases)
	rg.POST("/purchases", h.Purchase)
	rg.POST("/downloads/:book_id", h.TrackDownload)
}

func (h *LibraryHandler) Wishlist(c *gin.Context) {
	ids, err := h.libraryService.Wishlist(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"book_ids": ids})
}

func (h *LibraryHandler) AddToWishlist(c *gin.Context) {
	var req dto.LibraryBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.libraryService.AddToWishlist(c.Request.Context(), c.GetString("userID"), req.BookID)
	if errors.Is(err, service.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "added to wishlist"})
}

func (h *LibraryHandler) RemoveFromWishlist(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	if err := h.libraryService.RemoveFromWishlist(c.Request.Context(), c.GetString("userID"), bookID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

func (h *LibraryHandler) Purchases(c *gin.Context) {
	ids, err := h.libraryService.Purchases(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"book_ids": ids})
}

func (h *LibraryHandler) Purchase(c *gin.Context) {
	var req dto.LibraryBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.libraryService.Purchase(c.Request.Context(), c.GetString("userID"), req.BookID)
	if errors.Is(err, service.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book purchased"})
}

func (h *LibraryHandler) TrackDownload(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	err = h.libraryService.TrackDownload(c.Request.Context(), c.GetString("userID"), bookID)
	if errors.Is(err, service.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "download tracked"})
}
