package dto

import "app/internal/model"

// ServiceListResponse wraps the catalog payload the storefront consumes.
type ServiceListResponse struct {
	Success bool                `json:"success"`
	Data    []model.ServiceView `json:"data"`
	Count   int                 `json:"count"`
}

// ErrorResponse is the failure envelope for catalog and payment routes.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
