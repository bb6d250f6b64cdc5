package dto

import "time"

// ProfileUpsertRequest is used for incoming profile create/update
// requests. BirthDate uses the YYYY-MM-DD form; the zodiac sign is
// derived server-side when omitted.
type ProfileUpsertRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	BirthDate   string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	ZodiacSign  string `json:"zodiac_sign" validate:"omitempty,max=20"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
	Bio         string `json:"bio" validate:"omitempty,max=500"`
}

// ProfileResponse is returned in API responses.
type ProfileResponse struct {
	UserID      string     `json:"user_id"`
	DisplayName string     `json:"display_name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	ZodiacSign  string     `json:"zodiac_sign"`
	AvatarURL   string     `json:"avatar_url"`
	Bio         string     `json:"bio"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PreferencesUpdateRequest carries the client-editable preference
// fields. The credit balance is deliberately absent.
type PreferencesUpdateRequest struct {
	DailyHoroscopeEnabled bool     `json:"daily_horoscope_enabled"`
	EmailNotifications    bool     `json:"email_notifications"`
	FavoriteServices      []string `json:"favorite_services" validate:"omitempty,dive,max=100"`
	PreferredReadingTime  string   `json:"preferred_reading_time" validate:"omitempty,oneof=morning afternoon evening"`
}

// PreferencesResponse includes the server-owned credit balance.
type PreferencesResponse struct {
	UserID                string    `json:"user_id"`
	CreditsBalance        int64     `json:"credits_balance"`
	DailyHoroscopeEnabled bool      `json:"daily_horoscope_enabled"`
	EmailNotifications    bool      `json:"email_notifications"`
	FavoriteServices      []string  `json:"favorite_services"`
	PreferredReadingTime  string    `json:"preferred_reading_time"`
	UpdatedAt             time.Time `json:"updated_at"`
}
