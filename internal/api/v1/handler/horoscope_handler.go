package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"app/internal/api/v1/dto"
	"app/internal/service"
	"app/internal/zodiac"

	"github.com/rs/zerolog"
)

type HoroscopeHandler struct {
	horoscopeSvc service.HoroscopeService
	logger       zerolog.Logger
}

func NewHoroscopeHandler(horoscopeSvc service.HoroscopeService, logger zerolog.Logger) *HoroscopeHandler {
	return &HoroscopeHandler{
		horoscopeSvc: horoscopeSvc,
		logger:       logger.With().Str("handler", "HoroscopeHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 horoscope routes. Daily horoscopes are public.
func (h *HoroscopeHandler) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("/horoscopes/daily", http.HandlerFunc(h.getDaily))
}

// getDaily godoc
// @Summary Today's horoscope for a sign
// @Tags horoscopes
// @Produce json
// @Param sign query string true "Zodiac sign"
// @Success 200 {object} dto.HoroscopeResponse
// @Failure 400 {string} string "unknown zodiac sign"
// @Failure 404 {string} string "horoscope not found"
// @Router /horoscopes/daily [get]
func (h *HoroscopeHandler) getDaily(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sign := r.URL.Query().Get("sign")
	if sign == "" {
		http.Error(w, "sign query parameter is required", http.StatusBadRequest)
		return
	}

	horoscope, err := h.horoscopeSvc.GetDaily(r.Context(), sign, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, zodiac.ErrUnknownSign):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrHoroscopeNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			h.logger.Error().Err(err).Str("sign", sign).Msg("failed to fetch daily horoscope")
			http.Error(w, "failed to fetch horoscope", http.StatusInternalServerError)
		}
		return
	}

	resp := dto.HoroscopeResponse{
		ZodiacSign:     horoscope.ZodiacSign,
		DateFor:        horoscope.DateFor,
		HoroscopeType:  horoscope.HoroscopeType,
		Content:        horoscope.Content,
		LoveForecast:   horoscope.LoveForecast,
		CareerForecast: horoscope.CareerForecast,
		HealthForecast: horoscope.HealthForecast,
		LuckyNumbers:   horoscope.LuckyNumbers,
		LuckyColors:    horoscope.LuckyColors,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
