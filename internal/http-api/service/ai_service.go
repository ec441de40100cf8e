package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/models"
	"egyan/internal/http-api/repository"
	"egyan/pkg/ai"
)

// Static fallbacks returned when the remote generative service fails. A
// failed call never propagates past this service.
const (
	FallbackSummary = "Could not generate a summary at this time."
	FallbackChat    = "I'm sorry, I encountered an error. Please try again."

	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

type AIService interface {
	SuggestKeywords(ctx context.Context, description string) []string
	GenerateAudioSummary(ctx context.Context, userID string, bookID int64) (string, error)
	Recommendations(ctx context.Context, readingHistory []string) []string
	AnalyzeSentiment(ctx context.Context, review string) string
	ChatReply(ctx context.Context, role, message string, history []dto.ChatMessage) string
}

type aiService struct {
	gen        ai.TextGenerator
	model      string
	bookRepo   repository.BookRepository
	engagement EngagementTracker
	logger     *slog.Logger
}

func NewAIService(
	gen ai.TextGenerator,
	model string,
	bookRepo repository.BookRepository,
	engagement EngagementTracker,
	logger *slog.Logger,
) AIService {
	return &aiService{
		gen:        gen,
		model:      model,
		bookRepo:   bookRepo,
		engagement: engagement,
		logger:     logger,
	}
}

// SuggestKeywords asks for tags matching a book description. Failures fall
// back to an empty list.
func (s *aiService) SuggestKeywords(ctx context.Context, description string) []string {
	prompt := fmt.Sprintf(
		`Based on the following book description, suggest 5 relevant keywords or tags. Return the response as a JSON array of strings. Description: %q`,
		description,
	)
	text, err := s.gen.GenerateText(ctx, s.model, "", ai.UserContent(prompt))
	if err != nil {
		s.logger.Error("ai: keyword suggestion failed", "error", err)
		return []string{}
	}
	return parseStringArray(text)
}

// GenerateAudioSummary produces a short summary suitable for text-to-speech.
// A remote failure yields the static fallback without recording anything;
// only a successful generation counts toward trial engagement.
func (s *aiService) GenerateAudioSummary(ctx context.Context, userID string, bookID int64) (string, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return "", ErrBookNotFound
	}

	prompt := fmt.Sprintf(
		`Generate a concise 100-word summary for a book titled %q. Here is its description: %q. This summary will be used for a text-to-speech feature.`,
		book.Title, book.Description,
	)
	text, err := s.gen.GenerateText(ctx, s.model, "", ai.UserContent(prompt))
	if err != nil {
		s.logger.Error("ai: audio summary failed", "book_id", bookID, "error", err)
		return FallbackSummary, nil
	}

	_ = s.engagement.TrackEngagement(ctx, userID, EngagementAISummary)
	return text, nil
}

// Recommendations suggests titles based on the user's reading history.
func (s *aiService) Recommendations(ctx context.Context, readingHistory []string) []string {
	prompt := fmt.Sprintf(
		`Based on a user who has read the following books: %s. Please recommend 3 other book titles that they might enjoy. Return the response as a JSON array of strings, with just the titles.`,
		strings.Join(readingHistory, ", "),
	)
	text, err := s.gen.GenerateText(ctx, s.model, "", ai.UserContent(prompt))
	if err != nil {
		s.logger.Error("ai: recommendations failed", "error", err)
		return []string{}
	}
	return parseStringArray(text)
}

// AnalyzeSentiment classifies a review as Positive, Neutral or Negative.
// Anything else, including a remote failure, is Neutral.
func (s *aiService) AnalyzeSentiment(ctx context.Context, review string) string {
	prompt := fmt.Sprintf(
		`Analyze the sentiment of this book review and classify it as "Positive", "Neutral", or "Negative". Review: %q`,
		review,
	)
	text, err := s.gen.GenerateText(ctx, s.model, "", ai.UserContent(prompt))
	if err != nil {
		s.logger.Error("ai: sentiment analysis failed", "error", err)
		return SentimentNeutral
	}
	sentiment := strings.TrimSpace(text)
	switch sentiment {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return sentiment
	}
	return SentimentNeutral
}

// ChatReply answers a user message with a role-aware assistant persona.
func (s *aiService) ChatReply(ctx context.Context, role, message string, history []dto.ChatMessage) string {
	contents := make([]ai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, ai.Content{
			Role:  msg.Role,
			Parts: []ai.Part{{Text: msg.Text}},
		})
	}
	contents = append(contents, ai.Content{Role: "user", Parts: []ai.Part{{Text: message}}})

	text, err := s.gen.GenerateText(ctx, s.model, chatSystemInstruction(role), contents)
	if err != nil {
		s.logger.Error("ai: chat reply failed", "error", err)
		return FallbackChat
	}
	return text
}

func chatSystemInstruction(role string) string {
	const base = "You are a helpful and friendly AI assistant for E-Gyan Parija, a digital library platform. Be concise and helpful. Format your responses with markdown if it improves readability."
	switch role {
	case models.RoleReader:
		return base + " You are assisting a user with the 'Reader' role. Help them discover books, understand platform features like purchasing or reviewing, and navigate the library."
	case models.RoleAuthor:
		return base + " You are assisting a user with the 'Author' role. Help them with the book submission process, understanding analytics, and finding information about their published books."
	case models.RolePublisher:
		return base + " You are assisting a user with the 'Publisher' role. Help them manage book submissions, understand platform analytics, and manage authors."
	case models.RoleAdmin:
		return base + " You are assisting a user with the 'Admin' role. Provide high-level overviews of platform management, user roles, and system settings."
	case models.RoleReviewer:
		return base + " You are assisting a user with the 'Reviewer' role. Guide them on how to find books to review and how the review submission process works."
	default:
		return base + " You are assisting a 'Guest' user. Encourage them to explore the platform's features and guide them on how to register or subscribe."
	}
}

// parseStringArray decodes a JSON array of strings, tolerating the markdown
// code fences the model sometimes wraps around JSON output.
func parseStringArray(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var items []string
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return []string{}
	}
	return items
}
