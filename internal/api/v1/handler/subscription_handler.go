package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type SubscriptionHandler struct {
	subSvc service.SubscriptionService
	logger zerolog.Logger
}

func NewSubscriptionHandler(subSvc service.SubscriptionService, logger zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subSvc: subSvc,
		logger: logger.With().Str("handler", "SubscriptionHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 subscription routes.
func (h *SubscriptionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/subscriptions/status", authMw(http.HandlerFunc(h.status)))
}

// status godoc
// @Summary Current subscription status
// @Description Reports the caller's plan and billing period, or the free tier.
// @Tags subscriptions
// @Produce json
// @Success 200 {object} dto.SubscriptionStatusResponse
// @Failure 401 {string} string "unauthorized"
// @Router /subscriptions/status [get]
func (h *SubscriptionHandler) status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sub, err := h.subSvc.GetSubscription(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch subscription")
		http.Error(w, "failed to fetch subscription", http.StatusInternalServerError)
		return
	}

	resp := dto.SubscriptionStatusResponse{Plan: "free", Status: "none"}
	if sub != nil {
		active := sub.Status == "active" && sub.EndsAt.After(time.Now())
		resp = dto.SubscriptionStatusResponse{
			Plan:     sub.PlanID,
			Status:   sub.Status,
			Active:   active,
			StartsAt: &sub.StartsAt,
			EndsAt:   &sub.EndsAt,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
