package dto

// CheckoutRequest selects the catalog service to purchase.
type CheckoutRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid4"`
}

// SubscriptionCheckoutRequest selects a recurring plan directly.
type SubscriptionCheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=moon_guide astro_calendar couples base"`
}

// CheckoutResponse carries the Stripe-hosted checkout URL to redirect to.
type CheckoutResponse struct {
	URL string `json:"url"`
}
