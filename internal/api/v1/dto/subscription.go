package dto

import "time"

// SubscriptionStatusResponse reports the user's recurring plan. Plan is
// "free" when the user never subscribed or the subscription lapsed.
type SubscriptionStatusResponse struct {
	Plan     string     `json:"plan"`
	Status   string     `json:"status"`
	Active   bool       `json:"active"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}
