package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type ReadingHandler struct {
	readingSvc service.ReadingService
	logger     zerolog.Logger
}

func NewReadingHandler(readingSvc service.ReadingService, logger zerolog.Logger) *ReadingHandler {
	return &ReadingHandler{
		readingSvc: readingSvc,
		logger:     logger.With().Str("handler", "ReadingHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 reading routes.
func (h *ReadingHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/readings", authMw(http.HandlerFunc(h.listReadings)))
	mux.Handle("/readings/", authMw(http.HandlerFunc(h.getReading)))
}

// listReadings godoc
// @Summary List the caller's readings
// @Tags readings
// @Produce json
// @Success 200 {object} dto.ReadingListResponse
// @Failure 401 {string} string "unauthorized"
// @Router /readings [get]
func (h *ReadingHandler) listReadings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	readings, err := h.readingSvc.ListReadings(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list readings")
		http.Error(w, "failed to fetch readings", http.StatusInternalServerError)
		return
	}

	data := make([]dto.ReadingResponse, 0, len(readings))
	for _, rd := range readings {
		data = append(data, toReadingResponse(&rd))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.ReadingListResponse{Success: true, Data: data, Count: len(data)})
}

// getReading godoc
// @Summary Fetch one reading by ID
// @Tags readings
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} dto.ReadingResponse
// @Failure 404 {string} string "reading not found"
// @Router /readings/{id} [get]
func (h *ReadingHandler) getReading(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/readings/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	reading, err := h.readingSvc.GetReading(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, service.ErrReadingNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("reading_id", id).Msg("failed to fetch reading")
		http.Error(w, "failed to fetch reading", http.StatusInternalServerError)
		return
	}

	resp := toReadingResponse(reading)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func toReadingResponse(rd *model.Reading) dto.ReadingResponse {
	return dto.ReadingResponse{
		ID:          rd.ID,
		ServiceID:   rd.ServiceID,
		OrderID:     rd.OrderID,
		Title:       rd.Title,
		Content:     rd.Content,
		ReadingType: rd.ReadingType,
		CreatedAt:   rd.CreatedAt,
	}
}
