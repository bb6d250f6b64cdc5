package dto

import "time"

// HoroscopeResponse is a published horoscope for one sign and date.
type HoroscopeResponse struct {
	ZodiacSign     string    `json:"zodiac_sign"`
	DateFor        time.Time `json:"date_for"`
	HoroscopeType  string    `json:"horoscope_type"`
	Content        string    `json:"content"`
	LoveForecast   string    `json:"love_forecast"`
	CareerForecast string    `json:"career_forecast"`
	HealthForecast string    `json:"health_forecast"`
	LuckyNumbers   []int     `json:"lucky_numbers"`
	LuckyColors    []string  `json:"lucky_colors"`
}
