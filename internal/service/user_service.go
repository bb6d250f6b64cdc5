package service

import (
	"context"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/zodiac"

	"github.com/rs/zerolog"
)

// UserService manages profiles and per-user preferences.
type UserService interface {
	UpsertProfile(ctx context.Context, p *model.Profile) (*model.Profile, error)
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	GetPreferences(ctx context.Context, userID string) (*model.UserPreferences, error)
	UpdatePreferences(ctx context.Context, p *model.UserPreferences) (*model.UserPreferences, error)
}

type userService struct {
	repo   repository.UserRepository
	logger zerolog.Logger
}

// NewUserService creates a new UserService with a scoped logger.
func NewUserService(repo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger.With().Str("service", "UserService").Logger(),
	}
}

// UpsertProfile stores the profile, deriving the zodiac sign from the
// birth date when the client did not supply one.
func (s *userService) UpsertProfile(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	if p.ZodiacSign == "" && p.BirthDate != nil {
		p.ZodiacSign = zodiac.SignForDate(*p.BirthDate)
	}
	if p.ZodiacSign != "" {
		sign, err := zodiac.Normalize(p.ZodiacSign)
		if err != nil {
			return nil, err
		}
		p.ZodiacSign = sign
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("user_id", p.UserID).Msg("Failed to upsert profile")
		return nil, err
	}
	return p, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch profile")
		return nil, err
	}
	return p, nil
}

// GetPreferences returns stored preferences, or sensible defaults for a
// user who never saved any.
func (s *userService) GetPreferences(ctx context.Context, userID string) (*model.UserPreferences, error) {
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch preferences")
		return nil, err
	}
	if prefs == nil {
		prefs = &model.UserPreferences{
			UserID:                userID,
			DailyHoroscopeEnabled: true,
			EmailNotifications:    true,
			FavoriteServices:      []string{},
			PreferredReadingTime:  "morning",
		}
	}
	return prefs, nil
}

// UpdatePreferences saves client-editable preference fields. The credit
// balance is server-owned and never taken from the request.
func (s *userService) UpdatePreferences(ctx context.Context, p *model.UserPreferences) (*model.UserPreferences, error) {
	if err := s.repo.UpsertPreferences(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("user_id", p.UserID).Msg("Failed to upsert preferences")
		return nil, err
	}
	return s.GetPreferences(ctx, p.UserID)
}
