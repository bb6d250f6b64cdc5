package service

import (
	"context"
	"errors"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var ErrReadingNotFound = errors.New("reading not found")

// ReadingService exposes delivered readings to their owner.
type ReadingService interface {
	GetReading(ctx context.Context, id, userID string) (*model.Reading, error)
	ListReadings(ctx context.Context, userID string) ([]model.Reading, error)
}

type readingService struct {
	repo   repository.ReadingRepository
	logger zerolog.Logger
}

// NewReadingService creates a new ReadingService with a scoped logger.
func NewReadingService(repo repository.ReadingRepository, logger zerolog.Logger) ReadingService {
	return &readingService{
		repo:   repo,
		logger: logger.With().Str("service", "ReadingService").Logger(),
	}
}

// GetReading returns a single reading scoped to its owner.
func (s *readingService) GetReading(ctx context.Context, id, userID string) (*model.Reading, error) {
	r, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("reading_id", id).Msg("Failed to fetch reading")
		return nil, err
	}
	if r == nil {
		return nil, ErrReadingNotFound
	}
	return r, nil
}

// ListReadings returns the user's readings, newest first.
func (s *readingService) ListReadings(ctx context.Context, userID string) ([]model.Reading, error) {
	readings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list readings")
		return nil, err
	}
	return readings, nil
}
