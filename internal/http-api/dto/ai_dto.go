package dto

type SuggestKeywordsRequest struct {
	Description string `json:"description" binding:"required"`
}

type AudioSummaryRequest struct {
	BookID int64 `json:"book_id" binding:"required"`
}

type RecommendationsRequest struct {
	ReadingHistory []string `json:"reading_history" binding:"required"`
}

type SentimentRequest struct {
	Review string `json:"review" binding:"required"`
}

type ChatMessage struct {
	Role string `json:"role" binding:"required,oneof=user model"`
	Text string `json:"text" binding:"required"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}
