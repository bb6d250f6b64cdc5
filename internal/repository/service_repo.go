package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ServiceRepository defines read access to the service catalog. The
// catalog is administered out of band; the application never writes it.
type ServiceRepository interface {
	// ListActive returns active services ordered by ascending price.
	// category narrows to one category; serviceType is "free",
	// "premium" or empty for all.
	ListActive(ctx context.Context, category, serviceType string) ([]model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
}

type serviceRepo struct {
	pool *pgxpool.Pool
}

// NewServiceRepo creates a new ServiceRepository.
func NewServiceRepo(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepo{pool: pool}
}

func (r *serviceRepo) ListActive(ctx context.Context, category, serviceType string) ([]model.Service, error) {
	q := `
        SELECT id, name, description, category, is_premium, is_popular, price_credits, is_active, created_at
        FROM services
        WHERE is_active = TRUE
    `
	args := []interface{}{}
	if category != "" {
		args = append(args, category)
		q += fmt.Sprintf(" AND category = $%d", len(args))
	}
	switch serviceType {
	case "free":
		q += " AND is_premium = FALSE"
	case "premium":
		q += " AND is_premium = TRUE"
	}
	q += " ORDER BY price_credits ASC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.IsPremium, &s.IsPopular, &s.PriceCredits, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}
	return services, nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	const q = `
        SELECT id, name, description, category, is_premium, is_popular, price_credits, is_active, created_at
        FROM services
        WHERE id = $1
    `
	var s model.Service
	err := r.pool.QueryRow(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.IsPremium, &s.IsPopular, &s.PriceCredits, &s.IsActive, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch service %s: %w", id, err)
	}
	return &s, nil
}
