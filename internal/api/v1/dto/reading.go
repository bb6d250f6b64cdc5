package dto

import "time"

// ReadingResponse is a delivered reading as returned to its owner.
type ReadingResponse struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	OrderID     string    `json:"order_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ReadingType string    `json:"reading_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReadingListResponse wraps a user's reading history.
type ReadingListResponse struct {
	Success bool              `json:"success"`
	Data    []ReadingResponse `json:"data"`
	Count   int               `json:"count"`
}
