package repository

import (
	"context"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CompatibilityRepository stores generated compatibility reports.
type CompatibilityRepository interface {
	Create(ctx context.Context, report *model.CompatibilityReport) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.CompatibilityReport, error)
}

type compatibilityRepo struct {
	pool *pgxpool.Pool
}

// NewCompatibilityRepo creates a new CompatibilityRepository.
func NewCompatibilityRepo(pool *pgxpool.Pool) CompatibilityRepository {
	return &compatibilityRepo{pool: pool}
}

func (r *compatibilityRepo) Create(ctx context.Context, report *model.CompatibilityReport) error {
	const q = `
        INSERT INTO compatibility_reports (id, user_id, user_zodiac, partner_zodiac, compatibility_score, overall_summary, strengths, challenges, advice, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
        RETURNING created_at
    `
	err := r.pool.QueryRow(ctx, q,
		report.ID,
		report.UserID,
		report.UserZodiac,
		report.PartnerZodiac,
		report.CompatibilityScore,
		report.OverallSummary,
		report.Strengths,
		report.Challenges,
		report.Advice,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("create compatibility report for user %s: %w", report.UserID, err)
	}
	return nil
}

func (r *compatibilityRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.CompatibilityReport, error) {
	const q = `
        SELECT id, user_id, user_zodiac, partner_zodiac, compatibility_score, overall_summary, strengths, challenges, advice, created_at
        FROM compatibility_reports
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list compatibility reports for user %s: %w", userID, err)
	}
	defer rows.Close()

	var reports []model.CompatibilityReport
	for rows.Next() {
		var rep model.CompatibilityReport
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.UserZodiac, &rep.PartnerZodiac, &rep.CompatibilityScore, &rep.OverallSummary, &rep.Strengths, &rep.Challenges, &rep.Advice, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan compatibility report row: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate compatibility report rows: %w", err)
	}
	return reports, nil
}
