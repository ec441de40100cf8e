package ai

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("ai gateway disabled: no api key configured")

// Disabled is a TextGenerator that always fails, letting callers exercise
// their fallback paths when the platform runs without an API key.
type Disabled struct{}

func (Disabled) GenerateText(ctx context.Context, model, systemPrompt string, contents []Content) (string, error) {
	return "", ErrDisabled
}
