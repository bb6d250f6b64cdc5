package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userSvc  service.UserService
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserHandler(userSvc service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		validate: v,
		logger:   logger.With().Str("handler", "UserHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 user routes.
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/users/me", authMw(http.HandlerFunc(h.handleProfile)))
	mux.Handle("/users/me/preferences", authMw(http.HandlerFunc(h.handlePreferences)))
}

func (h *UserHandler) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.upsertProfile(w, r)
	case http.MethodGet:
		h.getProfile(w, r)
	default:
		http.NotFound(w, r)
	}
}

// upsertProfile godoc
// @Summary Create or update the caller's profile
// @Description The zodiac sign is derived from the birth date when not supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param profile body dto.ProfileUpsertRequest true "Profile"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {string} string "invalid request payload"
// @Failure 401 {string} string "unauthorized"
// @Router /users/me [post]
func (h *UserHandler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req dto.ProfileUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	profile := &model.Profile{
		UserID:      userID,
		DisplayName: req.DisplayName,
		ZodiacSign:  req.ZodiacSign,
		AvatarURL:   req.AvatarURL,
		Bio:         req.Bio,
	}
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			http.Error(w, "Invalid birth_date: "+err.Error(), http.StatusBadRequest)
			return
		}
		profile.BirthDate = &bd
	}

	saved, err := h.userSvc.UpsertProfile(r.Context(), profile)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to upsert profile")
		http.Error(w, "Failed to save profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProfileResponse(saved))
}

// getProfile godoc
// @Summary Fetch the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {string} string "profile not found"
// @Router /users/me [get]
func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	profile, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch profile")
		http.Error(w, "failed to fetch profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProfileResponse(profile))
}

func (h *UserHandler) handlePreferences(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	if userID == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	switch r.Method {
	case http.MethodGet:
		prefs, err := h.userSvc.GetPreferences(r.Context(), userID)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to fetch preferences")
			http.Error(w, "failed to fetch preferences", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toPreferencesResponse(prefs))
	case http.MethodPut:
		var req dto.PreferencesUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.validate.Struct(&req); err != nil {
			http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
			return
		}
		prefs, err := h.userSvc.UpdatePreferences(r.Context(), &model.UserPreferences{
			UserID:                userID,
			DailyHoroscopeEnabled: req.DailyHoroscopeEnabled,
			EmailNotifications:    req.EmailNotifications,
			FavoriteServices:      req.FavoriteServices,
			PreferredReadingTime:  req.PreferredReadingTime,
		})
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to update preferences")
			http.Error(w, "failed to update preferences", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(toPreferencesResponse(prefs))
	default:
		http.NotFound(w, r)
	}
}

func toProfileResponse(p *model.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
		BirthDate:   p.BirthDate,
		ZodiacSign:  p.ZodiacSign,
		AvatarURL:   p.AvatarURL,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPreferencesResponse(p *model.UserPreferences) dto.PreferencesResponse {
	favorites := p.FavoriteServices
	if favorites == nil {
		favorites = []string{}
	}
	return dto.PreferencesResponse{
		UserID:                p.UserID,
		CreditsBalance:        p.CreditsBalance,
		DailyHoroscopeEnabled: p.DailyHoroscopeEnabled,
		EmailNotifications:    p.EmailNotifications,
		FavoriteServices:      favorites,
		PreferredReadingTime:  p.PreferredReadingTime,
		UpdatedAt:             p.UpdatedAt,
	}
}
