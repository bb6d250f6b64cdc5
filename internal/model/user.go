package model

import "time"

// Profile represents a user's public profile. The auth identity itself
// is owned by the hosted auth provider; this row only carries display
// and birth data.
type Profile struct {
	UserID      string     `db:"user_id" json:"user_id"`
	DisplayName string     `db:"display_name" json:"display_name"`
	BirthDate   *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	ZodiacSign  string     `db:"zodiac_sign" json:"zodiac_sign"`
	AvatarURL   string     `db:"avatar_url" json:"avatar_url"`
	Bio         string     `db:"bio" json:"bio"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// UserPreferences holds per-user settings and the credit balance. The
// balance is adjusted server-side only; clients read it.
type UserPreferences struct {
	UserID                string    `db:"user_id" json:"user_id"`
	CreditsBalance        int64     `db:"credits_balance" json:"credits_balance"`
	DailyHoroscopeEnabled bool      `db:"daily_horoscope_enabled" json:"daily_horoscope_enabled"`
	EmailNotifications    bool      `db:"email_notifications" json:"email_notifications"`
	FavoriteServices      []string  `db:"favorite_services" json:"favorite_services"`
	PreferredReadingTime  string    `db:"preferred_reading_time" json:"preferred_reading_time"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}
