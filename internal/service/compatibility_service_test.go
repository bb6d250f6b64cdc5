package service

import (
	"context"
	"testing"

	"app/internal/model"

	"github.com/rs/zerolog"
)

type fakeCompatRepo struct {
	created []*model.CompatibilityReport
}

func (f *fakeCompatRepo) Create(_ context.Context, report *model.CompatibilityReport) error {
	f.created = append(f.created, report)
	return nil
}

func (f *fakeCompatRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.CompatibilityReport, error) {
	var out []model.CompatibilityReport
	for _, r := range f.created {
		if r.UserID == userID && len(out) < limit {
			out = append(out, *r)
		}
	}
	return out, nil
}

func TestCheckCompatibilityStoresReport(t *testing.T) {
	repo := &fakeCompatRepo{}
	svc := NewCompatibilityService(repo, zerolog.Nop())

	report, err := svc.CheckCompatibility(context.Background(), "user-1", "Leo", "aries")
	if err != nil {
		t.Fatalf("CheckCompatibility returned error: %v", err)
	}
	if report.UserZodiac != "leo" || report.PartnerZodiac != "aries" {
		t.Errorf("signs not normalized: %q / %q", report.UserZodiac, report.PartnerZodiac)
	}
	if report.CompatibilityScore <= 0 || report.CompatibilityScore > 95 {
		t.Errorf("score %d out of range", report.CompatibilityScore)
	}
	if report.OverallSummary == "" || report.Strengths == "" || report.Challenges == "" || report.Advice == "" {
		t.Error("report text incomplete")
	}
	if len(repo.created) != 1 {
		t.Fatalf("stored %d reports, want 1", len(repo.created))
	}

	// Same pair again reads the same.
	again, err := svc.CheckCompatibility(context.Background(), "user-1", "Leo", "aries")
	if err != nil {
		t.Fatalf("second check failed: %v", err)
	}
	if again.CompatibilityScore != report.CompatibilityScore || again.OverallSummary != report.OverallSummary {
		t.Error("same pair produced a different report")
	}
}

func TestCheckCompatibilityUnknownSign(t *testing.T) {
	svc := NewCompatibilityService(&fakeCompatRepo{}, zerolog.Nop())
	if _, err := svc.CheckCompatibility(context.Background(), "user-1", "leo", "dragon"); err == nil {
		t.Fatal("expected error for unknown sign")
	}
}
