package service

import (
	"context"
	"fmt"

	"app/internal/model"
	"app/internal/repository"
	"app/internal/zodiac"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CompatibilityService scores two zodiac signs and stores the report in
// the user's history.
type CompatibilityService interface {
	CheckCompatibility(ctx context.Context, userID, userSign, partnerSign string) (*model.CompatibilityReport, error)
	History(ctx context.Context, userID string, limit int) ([]model.CompatibilityReport, error)
}

type compatibilityService struct {
	repo   repository.CompatibilityRepository
	logger zerolog.Logger
}

// NewCompatibilityService creates a new CompatibilityService with a scoped logger.
func NewCompatibilityService(repo repository.CompatibilityRepository, logger zerolog.Logger) CompatibilityService {
	return &compatibilityService{
		repo:   repo,
		logger: logger.With().Str("service", "CompatibilityService").Logger(),
	}
}

func (s *compatibilityService) CheckCompatibility(ctx context.Context, userID, userSign, partnerSign string) (*model.CompatibilityReport, error) {
	a, err := zodiac.Normalize(userSign)
	if err != nil {
		return nil, err
	}
	b, err := zodiac.Normalize(partnerSign)
	if err != nil {
		return nil, err
	}
	score, err := zodiac.Score(a, b)
	if err != nil {
		return nil, err
	}

	report := &model.CompatibilityReport{
		ID:                 uuid.NewString(),
		UserID:             userID,
		UserZodiac:         a,
		PartnerZodiac:      b,
		CompatibilityScore: score,
		OverallSummary:     summaryFor(a, b, score),
		Strengths:          strengthsFor(a, b, score),
		Challenges:         challengesFor(a, b, score),
		Advice:             adviceFor(score),
	}
	if err := s.repo.Create(ctx, report); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to store compatibility report")
		return nil, err
	}
	return report, nil
}

func (s *compatibilityService) History(ctx context.Context, userID string, limit int) ([]model.CompatibilityReport, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	reports, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to list compatibility reports")
		return nil, err
	}
	return reports, nil
}

// Report text is composed from fixed bands so the same pair always
// reads the same.

func summaryFor(a, b string, score int) string {
	switch {
	case score >= 85:
		return fmt.Sprintf("%s and %s share a rare cosmic alignment. With a compatibility score of %d, this pairing flows naturally in love and friendship alike.", a, b, score)
	case score >= 70:
		return fmt.Sprintf("%s and %s complement each other well. A score of %d points to a relationship that rewards the effort both put in.", a, b, score)
	default:
		return fmt.Sprintf("%s and %s approach life from different angles. A score of %d means this bond asks for patience and honest communication.", a, b, score)
	}
}

func strengthsFor(a, b string, score int) string {
	elA, elB := zodiac.Element(a), zodiac.Element(b)
	if elA == elB {
		return fmt.Sprintf("Shared %s energy gives you an instinctive understanding of each other's moods and motivations.", elA)
	}
	if score >= 70 {
		return fmt.Sprintf("Your %s and %s energies feed each other, bringing balance where either alone would overreach.", elA, elB)
	}
	return "Your differences keep the relationship interesting and push both of you to grow beyond familiar habits."
}

func challengesFor(a, b string, score int) string {
	if score >= 85 {
		return "Comfort can slide into complacency. Keep surprising each other."
	}
	elA, elB := zodiac.Element(a), zodiac.Element(b)
	if elA != elB {
		return fmt.Sprintf("%s and %s priorities can clash under pressure, so decisions made in haste tend to land badly.", elA, elB)
	}
	return "Similar temperaments can amplify each other's worst days. Give space before reacting."
}

func adviceFor(score int) string {
	switch {
	case score >= 85:
		return "Lean into the ease between you, but keep choosing each other deliberately rather than by habit."
	case score >= 70:
		return "Name what you need out loud. This pairing thrives on clarity and fades on assumption."
	default:
		return "Treat friction as information, not failure. Small rituals of connection will carry you through the rough patches."
	}
}
