package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
	stripeSvc  *service.StripeService
	validate   *validator.Validate
	logger     zerolog.Logger
}

func NewPaymentHandler(paymentSvc service.PaymentService, stripeSvc *service.StripeService, v *validator.Validate, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentSvc: paymentSvc,
		stripeSvc:  stripeSvc,
		validate:   v,
		logger:     logger.With().Str("handler", "PaymentHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 payment routes. The completion endpoint is
// public: the success page calls it before the client session refreshes,
// and the session ID itself is the proof of purchase. The webhook is
// verified by signature instead of a bearer token.
func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("/payments/complete", http.HandlerFunc(h.completePayment))
	mux.Handle("/webhooks/stripe", http.HandlerFunc(h.stripeSvc.HandleWebhook))
}

// completePayment godoc
// @Summary Complete a paid checkout session
// @Description Verifies the session with Stripe, marks the order paid and delivers the generated reading. Safe to call repeatedly.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.CompletePaymentRequest true "Completion request"
// @Success 200 {object} dto.CompletePaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments/complete [post]
func (h *PaymentHandler) completePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req dto.CompletePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	message, err := h.paymentSvc.CompletePayment(r.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotCompleted):
			h.writeError(w, http.StatusBadRequest, "payment not completed")
		case errors.Is(err, service.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, "order not found")
		default:
			h.logger.Error().Err(err).Str("session_id", req.SessionID).Msg("failed to complete payment")
			h.writeError(w, http.StatusInternalServerError, "failed to complete payment")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.CompletePaymentResponse{Success: true, Message: message})
}

func (h *PaymentHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{Success: false, Error: msg})
}
