package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateReading is returned when a reading already exists for an
// order; the unique index on readings.order_id enforces exactly-once
// delivery.
var ErrDuplicateReading = errors.New("reading already exists for order")

// OrderRepository defines access to purchase orders.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	GetByStripeSessionID(ctx context.Context, sessionID string) (*model.Order, error)
	// MarkPaidWithReading transitions the order to paid and inserts its
	// reading in one transaction. Both commit or neither does.
	MarkPaidWithReading(ctx context.Context, orderID string, reading *model.Reading) error
}

type orderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepo creates a new OrderRepository.
func NewOrderRepo(pool *pgxpool.Pool) OrderRepository {
	return &orderRepo{pool: pool}
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	const q = `
        INSERT INTO orders (id, user_id, service_id, stripe_session_id, amount_credits, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, q, o.ID, o.UserID, o.ServiceID, o.StripeSessionID, o.AmountCredits, o.Status).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create order for session %s: %w", o.StripeSessionID, err)
	}
	return nil
}

func (r *orderRepo) GetByStripeSessionID(ctx context.Context, sessionID string) (*model.Order, error) {
	const q = `
        SELECT id, user_id, service_id, stripe_session_id, amount_credits, status, created_at, updated_at
        FROM orders
        WHERE stripe_session_id = $1
    `
	var o model.Order
	err := r.pool.QueryRow(ctx, q, sessionID).Scan(&o.ID, &o.UserID, &o.ServiceID, &o.StripeSessionID, &o.AmountCredits, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch order for session %s: %w", sessionID, err)
	}
	return &o, nil
}

func (r *orderRepo) MarkPaidWithReading(ctx context.Context, orderID string, reading *model.Reading) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin completion tx for order %s: %w", orderID, err)
	}
	defer tx.Rollback(ctx)

	const updateQ = `
        UPDATE orders SET status = $2, updated_at = NOW()
        WHERE id = $1
    `
	if _, err := tx.Exec(ctx, updateQ, orderID, model.OrderStatusPaid); err != nil {
		return fmt.Errorf("mark order %s paid: %w", orderID, err)
	}

	metadata, err := json.Marshal(reading.Metadata)
	if err != nil {
		return fmt.Errorf("marshal reading metadata for order %s: %w", orderID, err)
	}
	const insertQ = `
        INSERT INTO readings (id, user_id, service_id, order_id, title, content, reading_type, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
    `
	_, err = tx.Exec(ctx, insertQ, reading.ID, reading.UserID, reading.ServiceID, orderID, reading.Title, reading.Content, reading.ReadingType, metadata)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateReading
		}
		return fmt.Errorf("insert reading for order %s: %w", orderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit completion tx for order %s: %w", orderID, err)
	}
	return nil
}
