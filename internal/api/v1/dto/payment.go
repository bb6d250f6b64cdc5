package dto

// CompletePaymentRequest is posted by the success page with the session
// ID Stripe appended to the return URL.
type CompletePaymentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// CompletePaymentResponse reports the completion outcome.
type CompletePaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
