package model

import "time"

// CompatibilityReport is a stored zodiac compatibility check between the
// user's sign and a partner's sign.
type CompatibilityReport struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"user_id"`
	UserZodiac         string    `db:"user_zodiac" json:"user_zodiac"`
	PartnerZodiac      string    `db:"partner_zodiac" json:"partner_zodiac"`
	CompatibilityScore int       `db:"compatibility_score" json:"compatibility_score"`
	OverallSummary     string    `db:"overall_summary" json:"overall_summary"`
	Strengths          string    `db:"strengths" json:"strengths"`
	Challenges         string    `db:"challenges" json:"challenges"`
	Advice             string    `db:"advice" json:"advice"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
