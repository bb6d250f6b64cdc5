package model

import "time"

// UserSubscription tracks a user's recurring plan for the monthly
// offerings (Moon Phase Love Guide, Monthly Astro Calendar, Couples
// Dashboard). One row per user, upserted from Stripe webhook events.
type UserSubscription struct {
	UserID               string    `db:"user_id" json:"user_id"`
	PlanID               string    `db:"plan_id" json:"plan_id"`
	StripeSubscriptionID *string   `db:"stripe_subscription_id" json:"stripe_subscription_id,omitempty"`
	StartsAt             time.Time `db:"starts_at" json:"starts_at"`
	EndsAt               time.Time `db:"ends_at" json:"ends_at"`
	Status               string    `db:"status" json:"status"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
