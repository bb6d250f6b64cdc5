package service

import (
	"context"
	"errors"
	"time"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/zodiac"

	"github.com/rs/zerolog"
)

var ErrHoroscopeNotFound = errors.New("horoscope not found")

// HoroscopeService serves published horoscopes by sign and date.
type HoroscopeService interface {
	GetDaily(ctx context.Context, sign string, date time.Time) (*model.Horoscope, error)
	GetByType(ctx context.Context, sign string, date time.Time, horoscopeType string) (*model.Horoscope, error)
}

type horoscopeService struct {
	repo   repository.HoroscopeRepository
	logger zerolog.Logger
}

// NewHoroscopeService creates a new HoroscopeService with a scoped logger.
func NewHoroscopeService(repo repository.HoroscopeRepository, logger zerolog.Logger) HoroscopeService {
	return &horoscopeService{
		repo:   repo,
		logger: logger.With().Str("service", "HoroscopeService").Logger(),
	}
}

func (s *horoscopeService) GetDaily(ctx context.Context, sign string, date time.Time) (*model.Horoscope, error) {
	return s.GetByType(ctx, sign, date, "daily")
}

func (s *horoscopeService) GetByType(ctx context.Context, sign string, date time.Time, horoscopeType string) (*model.Horoscope, error) {
	normalized, err := zodiac.Normalize(sign)
	if err != nil {
		return nil, err
	}
	h, err := s.repo.GetForDate(ctx, normalized, date, horoscopeType)
	if err != nil {
		s.logger.Error().Err(err).Str("sign", normalized).Str("type", horoscopeType).Msg("Failed to fetch horoscope")
		return nil, err
	}
	if h == nil {
		return nil, ErrHoroscopeNotFound
	}
	return h, nil
}
