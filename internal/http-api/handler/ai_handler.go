package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/service"
)

// AIHandler fronts the five generative operations. Remote failures never
// surface here; the service substitutes its static fallbacks.
type AIHandler struct {
	aiService service.AIService
}

func NewAIHandler(aiService service.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

func (h *AIHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/keywords", h.SuggestKeywords)
	rg.POST("/summary", h.AudioSummary)
	rg.POST("/recommendations", h.Recommendations)
	rg.POST("/sentiment", h.Sentiment)
	rg.POST("/chat", h.Chat)
}

func (h *AIHandler) SuggestKeywords(c *gin.Context) {
	var req dto.SuggestKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	keywords := h.aiService.SuggestKeywords(c.Request.Context(), req.Description)
	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}

func (h *AIHandler) AudioSummary(c *gin.Context) {
	var req dto.AudioSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.aiService.GenerateAudioSummary(c.Request.Context(), c.GetString("userID"), req.BookID)
	if errors.Is(err, service.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *AIHandler) Recommendations(c *gin.Context) {
	var req dto.RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	titles := h.aiService.Recommendations(c.Request.Context(), req.ReadingHistory)
	c.JSON(http.StatusOK, gin.H{"recommendations": titles})
}

func (h *AIHandler) Sentiment(c *gin.Context) {
	var req dto.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sentiment := h.aiService.AnalyzeSentiment(c.Request.Context(), req.Review)
	c.JSON(http.StatusOK, gin.H{"sentiment": sentiment})
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.aiService.ChatReply(c.Request.Context(), c.GetString("role"), req.Message, req.History)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
