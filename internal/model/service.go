package model

import "time"

// Service categories form a closed set managed by administrators.
const (
	CategoryDaily         = "daily"
	CategoryCompatibility = "compatibility"
	CategoryForecasts     = "forecasts"
	CategoryProfiles      = "profiles"
	CategoryMonthly       = "monthly"
	CategoryPlanning      = "planning"
	CategoryPremium       = "premium"
)

// Service is a purchasable or free offering in the catalog. Rows are
// created and edited out of band; the application never deletes them,
// only reads active ones.
type Service struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	IsPremium    bool      `db:"is_premium" json:"is_premium"`
	IsPopular    bool      `db:"is_popular" json:"is_popular"`
	PriceCredits int64     `db:"price_credits" json:"price_credits"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// ServiceView is the UI-ready projection of a Service. It is recomputed
// on every catalog fetch and never persisted.
type ServiceView struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	IsFree      bool     `json:"isFree"`
	IsPopular   bool     `json:"isPopular"`
	Icon        string   `json:"icon"`
	Rating      float64  `json:"rating"`
	Features    []string `json:"features"`
	Badge       string   `json:"badge,omitempty"`
}
