package model

import "time"

// Horoscope is a published daily (or weekly/monthly) horoscope for a
// zodiac sign. Rows are written by the content pipeline out of band.
type Horoscope struct {
	ID             string    `db:"id" json:"id"`
	ZodiacSign     string    `db:"zodiac_sign" json:"zodiac_sign"`
	DateFor        time.Time `db:"date_for" json:"date_for"`
	HoroscopeType  string    `db:"horoscope_type" json:"horoscope_type"`
	Content        string    `db:"content" json:"content"`
	LoveForecast   string    `db:"love_forecast" json:"love_forecast"`
	CareerForecast string    `db:"career_forecast" json:"career_forecast"`
	HealthForecast string    `db:"health_forecast" json:"health_forecast"`
	LuckyNumbers   []int     `db:"lucky_numbers" json:"lucky_numbers"`
	LuckyColors    []string  `db:"lucky_colors" json:"lucky_colors"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
