package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReadingRepository defines read access to generated readings. Inserts
// happen only through OrderRepository.MarkPaidWithReading so a reading
// can never exist without its paid order.
type ReadingRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*model.Reading, error)
	GetByID(ctx context.Context, id, userID string) (*model.Reading, error)
	ListByUser(ctx context.Context, userID string) ([]model.Reading, error)
}

type readingRepo struct {
	pool *pgxpool.Pool
}

// NewReadingRepo creates a new ReadingRepository.
func NewReadingRepo(pool *pgxpool.Pool) ReadingRepository {
	return &readingRepo{pool: pool}
}

const readingColumns = `id, user_id, service_id, order_id, title, content, reading_type, metadata, created_at`

func scanReading(row pgx.Row) (*model.Reading, error) {
	var rd model.Reading
	var rawMetadata []byte
	err := row.Scan(&rd.ID, &rd.UserID, &rd.ServiceID, &rd.OrderID, &rd.Title, &rd.Content, &rd.ReadingType, &rawMetadata, &rd.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(rawMetadata) > 0 {
		if err := json.Unmarshal(rawMetadata, &rd.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal reading metadata: %w", err)
		}
	}
	return &rd, nil
}

func (r *readingRepo) GetByOrderID(ctx context.Context, orderID string) (*model.Reading, error) {
	q := `SELECT ` + readingColumns + ` FROM readings WHERE order_id = $1`
	rd, err := scanReading(r.pool.QueryRow(ctx, q, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch reading for order %s: %w", orderID, err)
	}
	return rd, nil
}

func (r *readingRepo) GetByID(ctx context.Context, id, userID string) (*model.Reading, error) {
	q := `SELECT ` + readingColumns + ` FROM readings WHERE id = $1 AND user_id = $2`
	rd, err := scanReading(r.pool.QueryRow(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch reading %s: %w", id, err)
	}
	return rd, nil
}

func (r *readingRepo) ListByUser(ctx context.Context, userID string) ([]model.Reading, error) {
	q := `SELECT ` + readingColumns + ` FROM readings WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list readings for user %s: %w", userID, err)
	}
	defer rows.Close()

	var readings []model.Reading
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reading row: %w", err)
		}
		readings = append(readings, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reading rows: %w", err)
	}
	return readings, nil
}
