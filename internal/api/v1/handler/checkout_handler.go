package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewCheckoutHandler(checkoutSvc service.CheckoutService, v *validator.Validate, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutSvc: checkoutSvc,
		validate:    v,
		logger:      logger.With().Str("handler", "CheckoutHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 checkout routes.
func (h *CheckoutHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/checkout", authMw(http.HandlerFunc(h.checkout)))
	mux.Handle("/subscriptions/checkout", authMw(http.HandlerFunc(h.subscriptionCheckout)))
}

// checkout godoc
// @Summary Start checkout for a catalog service
// @Description Creates a Stripe Checkout session for the selected service. Recurring offerings route to subscription billing.
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Checkout request"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {string} string "invalid request payload"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "service not found"
// @Failure 500 {string} string "failed to create checkout session"
// @Router /checkout [post]
func (h *CheckoutHandler) checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	url, err := h.checkoutSvc.Checkout(r.Context(), userID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrServiceNotActive), errors.Is(err, service.ErrServiceFree):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error().Err(err).Str("service_id", req.ServiceID).Msg("failed to create checkout session")
			http.Error(w, "failed to create checkout session", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CheckoutResponse{URL: url})
}

// subscriptionCheckout godoc
// @Summary Initiate a Stripe Checkout session for a recurring plan
// @Description Creates a subscription-mode Stripe Checkout session and returns its URL.
// @Tags checkout
// @Accept json
// @Produce json
// @Param subscription body dto.SubscriptionCheckoutRequest true "Subscription checkout request"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {string} string "invalid request payload"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "failed to create checkout session"
// @Router /subscriptions/checkout [post]
func (h *CheckoutHandler) subscriptionCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req dto.SubscriptionCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	url, err := h.checkoutSvc.SubscriptionCheckout(r.Context(), userID, req.Plan)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPlan) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Str("plan", req.Plan).Msg("failed to create subscription checkout session")
		http.Error(w, "failed to create checkout session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CheckoutResponse{URL: url})
}
