// Package catalog transforms raw service rows into the UI-ready view
// models the clients render. The transform is stateless lookup-table
// work; it runs on every fetch and is never persisted.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"app/internal/model"
)

// FreePrice is the literal display price for non-premium services.
const FreePrice = "FREE"

// ErrInvalidPrice is returned when a display price string carries no
// parseable amount.
var ErrInvalidPrice = errors.New("invalid display price")

var iconByCategory = map[string]string{
	model.CategoryDaily:         "heart",
	model.CategoryCompatibility: "sparkles",
	model.CategoryForecasts:     "star",
	model.CategoryProfiles:      "sparkles",
	model.CategoryMonthly:       "moon",
	model.CategoryPlanning:      "users",
	model.CategoryPremium:       "crown",
}

var featuresByName = map[string][]string{
	"Daily Love Horoscope": {
		"Personalized daily predictions",
		"Love and relationship insights",
		"Best times for romance",
		"Weekly compatibility highlights",
	},
	"Basic Compatibility Score": {
		"Zodiac sign compatibility percentage",
		"Basic element harmony analysis",
		"Instant compatibility score",
		"3 free checks daily",
	},
	"Soul Mate Analysis": {
		"Complete astrological compatibility",
		"Relationship strengths & challenges",
		"Communication style analysis",
		"Long-term potential assessment",
		"Downloadable PDF report",
	},
	"Weekly Love Forecast": {
		"7-day detailed predictions",
		"Best days for dates & conversations",
		"Emotional energy patterns",
		"Weekly relationship goals",
	},
	"Birth Chart Compatibility": {
		"Sun, Moon, Rising sign analysis",
		"Venus and Mars compatibility",
		"Advanced astrological matching",
		"Detailed compatibility report",
	},
	"Zodiac Personality Profile": {
		"Complete personality breakdown",
		"Strengths and weaknesses analysis",
		"Career and relationship insights",
		"Personal growth recommendations",
	},
	"Moon Phase Love Guide": {
		"Monthly moon cycle tracking",
		"Best times for romance by moon phase",
		"Manifestation guidance",
		"Monthly ritual suggestions",
	},
	"Monthly Astro Calendar": {
		"30-day personalized calendar",
		"Daily best times for love/decisions",
		"Mercury retrograde warnings",
		"Venus transit opportunities",
	},
	"Relationship Timeline Planner": {
		"6-month relationship roadmap",
		"Best times for major decisions",
		"Compatibility cycles tracking",
		"Milestone predictions",
	},
	"Couples Dashboard": {
		"Joint compatibility tracking",
		"Daily couple's horoscope",
		"Relationship health metrics",
		"Communication timing advice",
		"Shared calendar integration",
	},
}

var genericFeatures = []string{"Premium service", "Expert guidance", "Detailed insights"}

// ratingSource draws the display rating. Ratings are intentionally
// non-deterministic (a fresh value in [4.6, 5.0] per fetch); tests pin
// this var to make assertions stable.
var ratingSource = func() float64 {
	return math.Round((4.6+rand.Float64()*0.4)*10) / 10
}

// ToView maps a catalog row to its view model.
func ToView(s model.Service) model.ServiceView {
	v := model.ServiceView{
		ID:          s.ID,
		Title:       s.Name,
		Description: s.Description,
		Price:       DisplayPrice(s.PriceCredits, s.IsPremium),
		Category:    s.Category,
		IsFree:      !s.IsPremium,
		IsPopular:   s.IsPopular,
		Icon:        IconForCategory(s.Category),
		Rating:      ratingSource(),
		Features:    FeaturesForService(s.Name),
	}
	if s.IsPremium {
		v.Type = "premium"
	} else {
		v.Type = "free"
	}
	if s.Category == model.CategoryMonthly {
		v.Badge = "per month"
	}
	return v
}

// ToViews maps a slice of rows, preserving order.
func ToViews(services []model.Service) []model.ServiceView {
	views := make([]model.ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, ToView(s))
	}
	return views
}

// DisplayPrice formats a minor-unit amount for display. Non-premium
// services always read "FREE" regardless of the stored amount.
func DisplayPrice(priceCredits int64, isPremium bool) string {
	if !isPremium {
		return FreePrice
	}
	return fmt.Sprintf("$%.2f", float64(priceCredits)/100)
}

// ParseDisplayPrice converts a display price string back to minor
// units: currency symbols and other non-numeric characters are
// stripped, the remainder parsed as a major-unit amount and scaled by
// 100 with rounding. "FREE" parses to 0.
func ParseDisplayPrice(price string) (int64, error) {
	if strings.EqualFold(strings.TrimSpace(price), FreePrice) {
		return 0, nil
	}
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	major, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	return int64(math.Round(major * 100)), nil
}

// IconForCategory returns the icon tag for a category, defaulting to
// the generic sparkles tag.
func IconForCategory(category string) string {
	if icon, ok := iconByCategory[category]; ok {
		return icon
	}
	return "sparkles"
}

// FeaturesForService returns the feature bullets for a service name,
// falling back to a generic three-item list.
func FeaturesForService(name string) []string {
	if features, ok := featuresByName[name]; ok {
		return features
	}
	return genericFeatures
}

// FilterViews applies the client-side filter selector to an in-memory
// catalog. "all" (or empty) keeps everything; "free" and "premium"
// partition by the premium flag; "subscription" selects the monthly
// offerings.
func FilterViews(views []model.ServiceView, filter string) []model.ServiceView {
	if filter == "" || filter == "all" {
		return views
	}
	out := make([]model.ServiceView, 0, len(views))
	for _, v := range views {
		switch filter {
		case "free":
			if v.IsFree {
				out = append(out, v)
			}
		case "premium":
			if !v.IsFree {
				out = append(out, v)
			}
		case "subscription":
			if v.Category == model.CategoryMonthly {
				out = append(out, v)
			}
		}
	}
	return out
}
