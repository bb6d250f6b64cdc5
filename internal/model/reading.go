package model

import "time"

// ReadingMetadata records how a reading came to exist.
type ReadingMetadata struct {
	OrderID     string    `json:"order_id"`
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Reading is the generated content delivered to a user after a paid
// order completes. Exactly one reading exists per paid order, enforced
// by a unique index on order_id. Readings are immutable once created.
type Reading struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	ServiceID   string          `db:"service_id" json:"service_id"`
	OrderID     string          `db:"order_id" json:"order_id"`
	Title       string          `db:"title" json:"title"`
	Content     string          `db:"content" json:"content"`
	ReadingType string          `db:"reading_type" json:"reading_type"`
	Metadata    ReadingMetadata `db:"metadata" json:"metadata"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
