package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"
	"app/internal/zodiac"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type CompatibilityHandler struct {
	compatSvc service.CompatibilityService
	userSvc   service.UserService
	validate  *validator.Validate
	logger    zerolog.Logger
}

func NewCompatibilityHandler(compatSvc service.CompatibilityService, userSvc service.UserService, v *validator.Validate, logger zerolog.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{
		compatSvc: compatSvc,
		userSvc:   userSvc,
		validate:  v,
		logger:    logger.With().Str("handler", "CompatibilityHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 compatibility routes.
func (h *CompatibilityHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/compatibility", authMw(http.HandlerFunc(h.handleCompatibility)))
}

func (h *CompatibilityHandler) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.check(w, r)
	case http.MethodGet:
		h.history(w, r)
	default:
		http.NotFound(w, r)
	}
}

// check godoc
// @Summary Score compatibility with a partner's sign
// @Description Uses the caller's profile sign unless user_sign overrides it. The report is stored in the caller's history.
// @Tags compatibility
// @Accept json
// @Produce json
// @Param compatibility body dto.CompatibilityRequest true "Compatibility request"
// @Success 201 {object} dto.CompatibilityResponse
// @Failure 400 {string} string "unknown zodiac sign"
// @Failure 401 {string} string "unauthorized"
// @Router /compatibility [post]
func (h *CompatibilityHandler) check(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req dto.CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	userSign := req.UserSign
	if userSign == "" {
		profile, err := h.userSvc.GetProfile(r.Context(), userID)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to fetch profile for compatibility check")
			http.Error(w, "failed to fetch profile", http.StatusInternalServerError)
			return
		}
		if profile == nil || profile.ZodiacSign == "" {
			http.Error(w, "no zodiac sign on profile; pass user_sign", http.StatusBadRequest)
			return
		}
		userSign = profile.ZodiacSign
	}

	report, err := h.compatSvc.CheckCompatibility(r.Context(), userID, userSign, req.PartnerSign)
	if err != nil {
		if errors.Is(err, zodiac.ErrUnknownSign) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("failed to run compatibility check")
		http.Error(w, "failed to run compatibility check", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCompatibilityResponse(report))
}

// history godoc
// @Summary List past compatibility reports
// @Tags compatibility
// @Produce json
// @Param limit query int false "Max reports to return"
// @Success 200 {array} dto.CompatibilityResponse
// @Failure 401 {string} string "unauthorized"
// @Router /compatibility [get]
func (h *CompatibilityHandler) history(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reports, err := h.compatSvc.History(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list compatibility reports")
		http.Error(w, "failed to fetch compatibility history", http.StatusInternalServerError)
		return
	}

	data := make([]dto.CompatibilityResponse, 0, len(reports))
	for i := range reports {
		data = append(data, toCompatibilityResponse(&reports[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func toCompatibilityResponse(report *model.CompatibilityReport) dto.CompatibilityResponse {
	return dto.CompatibilityResponse{
		ID:                 report.ID,
		UserZodiac:         report.UserZodiac,
		PartnerZodiac:      report.PartnerZodiac,
		CompatibilityScore: report.CompatibilityScore,
		OverallSummary:     report.OverallSummary,
		Strengths:          report.Strengths,
		Challenges:         report.Challenges,
		Advice:             report.Advice,
		CreatedAt:          report.CreatedAt,
	}
}
