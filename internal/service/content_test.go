package service

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReadingGeneric(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	title, content := generateReading("Soul Mate Analysis", "star@example.com", now)

	if title != "Your Soul Mate Analysis Reading" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(content, "Soul Mate Analysis") {
		t.Error("content should mention the purchased service")
	}
	if strings.Contains(content, "Astro Calendar") {
		t.Error("generic reading should not use the calendar template")
	}
}

func TestGenerateReadingMonthlyCalendar(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	title, content := generateReading("Monthly Astro Calendar", "star@example.com", now)

	if title != "March Astro Calendar" {
		t.Errorf("title = %q, want March Astro Calendar", title)
	}
	for _, want := range []string{
		"# March 2025 Astro Calendar for star@example.com",
		"**Week 1 (1-7)**",
		"**Week 2 (8-14)**",
		"**Week 3 (15-21)**",
		"**Week 4 (22-28)**",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("calendar content missing %q", want)
		}
	}
}

func TestGenerateReadingEmptyEmail(t *testing.T) {
	now := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	_, content := generateReading("Monthly Astro Calendar", "", now)
	if !strings.Contains(content, "Valued Customer") {
		t.Error("empty email should fall back to Valued Customer")
	}
}

func TestWeekRangeSpansMonthBoundary(t *testing.T) {
	// The range reports the literal day numbers of each 7-day window
	// from the first of the month, regardless of month length.
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	if got := weekRange(now, 1); got != "1-7" {
		t.Errorf("week 1 = %q, want 1-7", got)
	}
	if got := weekRange(now, 4); got != "22-28" {
		t.Errorf("week 4 = %q, want 22-28", got)
	}
}
