package dto

import "time"

// CompatibilityRequest asks for a score against a partner's sign. The
// user's own sign defaults to the one on their profile.
type CompatibilityRequest struct {
	PartnerSign string `json:"partner_sign" validate:"required,max=20"`
	UserSign    string `json:"user_sign" validate:"omitempty,max=20"`
}

// CompatibilityResponse is a stored compatibility report.
type CompatibilityResponse struct {
	ID                 string    `json:"id"`
	UserZodiac         string    `json:"user_zodiac"`
	PartnerZodiac      string    `json:"partner_zodiac"`
	CompatibilityScore int       `json:"compatibility_score"`
	OverallSummary     string    `json:"overall_summary"`
	Strengths          string    `json:"strengths"`
	Challenges         string    `json:"challenges"`
	Advice             string    `json:"advice"`
	CreatedAt          time.Time `json:"created_at"`
}
