package catalog

import (
	"testing"

	"app/internal/model"
)

func premiumService(name string, price int64) model.Service {
	return model.Service{
		ID:           "svc-" + name,
		Name:         name,
		Category:     model.CategoryCompatibility,
		IsPremium:    true,
		PriceCredits: price,
		IsActive:     true,
	}
}

func TestDisplayPrice(t *testing.T) {
	if got := DisplayPrice(0, false); got != "FREE" {
		t.Errorf("free price = %q, want FREE", got)
	}
	// Free services always display FREE even with a stored amount.
	if got := DisplayPrice(499, false); got != "FREE" {
		t.Errorf("free price with amount = %q, want FREE", got)
	}
	cases := map[int64]string{
		499:  "$4.99",
		1499: "$14.99",
		100:  "$1.00",
		299:  "$2.99",
	}
	for credits, want := range cases {
		if got := DisplayPrice(credits, true); got != want {
			t.Errorf("DisplayPrice(%d) = %q, want %q", credits, got, want)
		}
	}
}

func TestParseDisplayPriceRoundTrip(t *testing.T) {
	cases := map[string]int64{
		"$4.99":  499,
		"$14.99": 1499,
		"$2.99":  299,
		"4.99":   499,
		"FREE":   0,
	}
	for price, want := range cases {
		got, err := ParseDisplayPrice(price)
		if err != nil {
			t.Fatalf("ParseDisplayPrice(%q) error: %v", price, err)
		}
		if got != want {
			t.Errorf("ParseDisplayPrice(%q) = %d, want %d", price, got, want)
		}
	}
	if _, err := ParseDisplayPrice("$"); err == nil {
		t.Error("expected error for price with no digits")
	}
}

func TestToViewPremium(t *testing.T) {
	restore := ratingSource
	ratingSource = func() float64 { return 4.8 }
	defer func() { ratingSource = restore }()

	v := ToView(premiumService("Soul Mate Analysis", 499))
	if v.Price != "$4.99" {
		t.Errorf("price = %q, want $4.99", v.Price)
	}
	if v.Type != "premium" || v.IsFree {
		t.Errorf("type = %q isFree = %v, want premium/false", v.Type, v.IsFree)
	}
	if v.Icon != "sparkles" {
		t.Errorf("icon = %q, want sparkles", v.Icon)
	}
	if len(v.Features) != 5 {
		t.Errorf("features = %d entries, want the curated 5", len(v.Features))
	}
	if v.Badge != "" {
		t.Errorf("badge = %q, want none for one-time service", v.Badge)
	}
}

func TestToViewMonthlyBadge(t *testing.T) {
	s := premiumService("Monthly Astro Calendar", 799)
	s.Category = model.CategoryMonthly
	v := ToView(s)
	if v.Badge != "per month" {
		t.Errorf("badge = %q, want per month", v.Badge)
	}
	if v.Icon != "moon" {
		t.Errorf("icon = %q, want moon", v.Icon)
	}
}

func TestToViewUnknownServiceDefaults(t *testing.T) {
	s := premiumService("Brand New Offering", 199)
	s.Category = "experimental"
	v := ToView(s)
	if v.Icon != "sparkles" {
		t.Errorf("icon = %q, want generic sparkles", v.Icon)
	}
	if len(v.Features) != 3 {
		t.Errorf("features = %d entries, want generic 3", len(v.Features))
	}
}

func TestRatingRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := ToView(premiumService("Soul Mate Analysis", 499))
		if v.Rating < 4.6 || v.Rating > 5.0 {
			t.Fatalf("rating %v out of [4.6, 5.0]", v.Rating)
		}
	}
}

func TestFilterViewsPartition(t *testing.T) {
	free := model.Service{ID: "1", Name: "Daily Love Horoscope", Category: model.CategoryDaily, IsPremium: false, IsActive: true}
	premium := premiumService("Soul Mate Analysis", 499)
	monthly := premiumService("Moon Phase Love Guide", 499)
	monthly.Category = model.CategoryMonthly

	all := ToViews([]model.Service{free, premium, monthly})

	freeViews := FilterViews(all, "free")
	premiumViews := FilterViews(all, "premium")

	if len(freeViews) != 1 || !freeViews[0].IsFree {
		t.Fatalf("free filter returned %d items", len(freeViews))
	}
	for _, v := range premiumViews {
		if v.IsFree {
			t.Errorf("premium filter leaked free item %s", v.Title)
		}
	}
	if len(freeViews)+len(premiumViews) != len(all) {
		t.Errorf("free (%d) + premium (%d) != all (%d)", len(freeViews), len(premiumViews), len(all))
	}
	if got := FilterViews(all, "all"); len(got) != len(all) {
		t.Errorf("all filter returned %d of %d", len(got), len(all))
	}
	if got := FilterViews(all, "subscription"); len(got) != 1 || got[0].Category != model.CategoryMonthly {
		t.Errorf("subscription filter returned %d items", len(got))
	}
	// Filtering an empty catalog yields an empty display, not an error.
	if got := FilterViews(nil, "free"); len(got) != 0 {
		t.Errorf("empty catalog filter returned %d items", len(got))
	}
}
