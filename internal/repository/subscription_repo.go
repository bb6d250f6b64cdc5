package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionRepository defines access to recurring-plan state for the
// monthly offerings.
type SubscriptionRepository interface {
	GetSubscription(ctx context.Context, userID string) (*model.UserSubscription, error)
	UpsertStripeSubscription(ctx context.Context, userID, planID string, startsAt, endsAt time.Time, status, stripeSubscriptionID string) error
	CancelSubscription(ctx context.Context, userID string) error
}

type subscriptionRepo struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepository.
func NewSubscriptionRepo(pool *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepo{pool: pool}
}

func (r *subscriptionRepo) GetSubscription(ctx context.Context, userID string) (*model.UserSubscription, error) {
	const q = `
        SELECT user_id, plan_id, stripe_subscription_id, starts_at, ends_at, status, created_at, updated_at
        FROM user_subscriptions
        WHERE user_id = $1
    `
	var us model.UserSubscription
	err := r.pool.QueryRow(ctx, q, userID).Scan(
		&us.UserID,
		&us.PlanID,
		&us.StripeSubscriptionID,
		&us.StartsAt,
		&us.EndsAt,
		&us.Status,
		&us.CreatedAt,
		&us.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch subscription for user %s: %w", userID, err)
	}
	return &us, nil
}

func (r *subscriptionRepo) UpsertStripeSubscription(ctx context.Context, userID, planID string, startsAt, endsAt time.Time, status, stripeSubscriptionID string) error {
	var subID *string
	if stripeSubscriptionID != "" {
		subID = &stripeSubscriptionID
	}
	const q = `
        INSERT INTO user_subscriptions (user_id, plan_id, stripe_subscription_id, starts_at, ends_at, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        ON CONFLICT (user_id) DO UPDATE
        SET plan_id = EXCLUDED.plan_id,
            stripe_subscription_id = EXCLUDED.stripe_subscription_id,
            starts_at = EXCLUDED.starts_at,
            ends_at = EXCLUDED.ends_at,
            status = EXCLUDED.status,
            updated_at = NOW();
    `
	if _, err := r.pool.Exec(ctx, q, userID, planID, subID, startsAt, endsAt, status); err != nil {
		return fmt.Errorf("upsert stripe subscription for user %s: %w", userID, err)
	}
	return nil
}

func (r *subscriptionRepo) CancelSubscription(ctx context.Context, userID string) error {
	const q = `
        UPDATE user_subscriptions
        SET status = 'cancelled', stripe_subscription_id = NULL, updated_at = NOW()
        WHERE user_id = $1;
    `
	if _, err := r.pool.Exec(ctx, q, userID); err != nil {
		return fmt.Errorf("cancel subscription for user %s: %w", userID, err)
	}
	return nil
}
