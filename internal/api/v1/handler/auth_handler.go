package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/embedded"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	logger zerolog.Logger
}

func NewAuthHandler(logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger.With().Str("handler", "AuthHandler").Logger()}
}

// RegisterRoutes mounts v1 auth routes. Context classification is
// public; it runs before sign-in.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("/auth/context", http.HandlerFunc(h.authContext))
}

// authContext godoc
// @Summary Classify the caller's browser environment
// @Description Detects embedded in-app browsers (TikTok, Instagram, Facebook) from the User-Agent and Referer and reports which sign-in methods work there.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.AuthContextResponse
// @Router /auth/context [get]
func (h *AuthHandler) authContext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ctx := embedded.Classify(r.UserAgent(), r.Referer())
	caps := embedded.CapabilitiesFor(ctx)

	resp := dto.AuthContextResponse{
		Context:      string(ctx),
		DisplayName:  caps.DisplayName,
		OAuthAllowed: caps.OAuthAllowed,
		Fallback:     caps.Fallback,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
