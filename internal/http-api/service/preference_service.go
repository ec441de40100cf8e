package service

import (
	"context"
	"errors"

	"egyan/internal/http-api/dto"
	"egyan/internal/http-api/repository"
)

var ErrInvalidPreferences = errors.New("invalid preferences")

type PreferenceService interface {
	Get(ctx context.Context, userID string) (dto.Preferences, error)
	Set(ctx context.Context, userID string, prefs dto.Preferences) error
}

type preferenceService struct {
	repo repository.PreferenceRepository
}

func NewPreferenceService(repo repository.PreferenceRepository) PreferenceService {
	return &preferenceService{repo: repo}
}

// Get returns the stored preferences, falling back to defaults when the
// stored record is absent, malformed or holds unknown values.
func (s *preferenceService) Get(ctx context.Context, userID string) (dto.Preferences, error) {
	stored, err := s.repo.Get(ctx, userID)
	if err != nil {
		return dto.DefaultPreferences(), err
	}
	if stored == nil || !stored.Valid() {
		return dto.DefaultPreferences(), nil
	}
	return *stored, nil
}

func (s *preferenceService) Set(ctx context.Context, userID string, prefs dto.Preferences) error {
	if !prefs.Valid() {
		return ErrInvalidPreferences
	}
	return s.repo.Save(ctx, userID, &prefs)
}
