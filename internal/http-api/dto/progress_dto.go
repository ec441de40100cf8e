package dto

// UpdateProgressRequest accepts either a page number directly or the
// read-aloud playback position it should be derived from.
type UpdateProgressRequest struct {
	Page *int `json:"page"`

	SentenceIndex  *int `json:"sentence_index"`
	TotalSentences *int `json:"total_sentences"`
}

type ProgressResponse struct {
	BookID int64 `json:"book_id"`
	Page   int   `json:"page"`
}
