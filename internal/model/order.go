package model

import "time"

// Order statuses. Transitions are forward-only: pending -> paid.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order tracks a user's purchase attempt through the payment flow. An
// order is created when checkout is initiated and marked paid by the
// payment completion handler; rows are never deleted.
type Order struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	ServiceID       string    `db:"service_id" json:"service_id"`
	StripeSessionID string    `db:"stripe_session_id" json:"stripe_session_id"`
	AmountCredits   int64     `db:"amount_credits" json:"amount_credits"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
