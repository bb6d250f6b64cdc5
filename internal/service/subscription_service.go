package service

import (
	"context"
	"time"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// SubscriptionService defines business logic methods for recurring
// plan state.
type SubscriptionService interface {
	GetSubscription(ctx context.Context, userID string) (*model.UserSubscription, error)
	UpsertStripeSubscription(ctx context.Context, userID, planID string, startsAt, endsAt time.Time, status, stripeSubscriptionID string) error
	CancelSubscription(ctx context.Context, userID string) error
}

type subscriptionService struct {
	repo   repository.SubscriptionRepository
	logger zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionService with a scoped logger.
func NewSubscriptionService(repo repository.SubscriptionRepository, logger zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		repo:   repo,
		logger: logger.With().Str("service", "SubscriptionService").Logger(),
	}
}

// GetSubscription returns the user's subscription regardless of status,
// or nil when the user never subscribed.
func (s *subscriptionService) GetSubscription(ctx context.Context, userID string) (*model.UserSubscription, error) {
	sub, err := s.repo.GetSubscription(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to fetch subscription")
		return nil, err
	}
	return sub, nil
}

func (s *subscriptionService) UpsertStripeSubscription(ctx context.Context, userID, planID string, startsAt, endsAt time.Time, status, stripeSubscriptionID string) error {
	if err := s.repo.UpsertStripeSubscription(ctx, userID, planID, startsAt, endsAt, status, stripeSubscriptionID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("plan_id", planID).Str("status", status).Msg("Failed to upsert stripe subscription")
		return err
	}
	return nil
}

// CancelSubscription marks the user's subscription cancelled when
// Stripe reports the subscription deleted.
func (s *subscriptionService) CancelSubscription(ctx context.Context, userID string) error {
	if err := s.repo.CancelSubscription(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to cancel subscription")
		return err
	}
	return nil
}
