package service

import (
	"testing"

	"app/internal/model"
)

func TestIsRecurring(t *testing.T) {
	cases := []struct {
		name     string
		svc      model.Service
		expected bool
	}{
		{"monthly category", model.Service{Name: "Moon Phase Love Guide", Category: model.CategoryMonthly}, true},
		{"monthly in name", model.Service{Name: "Monthly Astro Calendar", Category: model.CategoryForecasts}, true},
		{"one-time", model.Service{Name: "Love Compatibility Reading", Category: model.CategoryCompatibility}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRecurring(&tc.svc); got != tc.expected {
				t.Errorf("isRecurring(%q/%q) = %v, want %v", tc.svc.Name, tc.svc.Category, got, tc.expected)
			}
		})
	}
}

func TestPlanForService(t *testing.T) {
	cases := map[string]string{
		"Moon Phase Love Guide":  "moon_guide",
		"Monthly Astro Calendar": "astro_calendar",
		"Couples Dashboard":      "couples",
		"Some Other Offering":    "base",
	}
	for name, want := range cases {
		if got := planForService(name); got != want {
			t.Errorf("planForService(%q) = %q, want %q", name, got, want)
		}
	}
}
