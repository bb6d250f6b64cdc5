package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
	logger     zerolog.Logger
}

func NewCatalogHandler(catalogSvc service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogSvc: catalogSvc,
		logger:     logger.With().Str("handler", "CatalogHandler").Logger(),
	}
}

// RegisterRoutes mounts v1 catalog routes. The listing is public.
func (h *CatalogHandler) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("/services", http.HandlerFunc(h.listServices))
}

// listServices godoc
// @Summary List active services
// @Description Returns the service catalog mapped to display form, optionally filtered by category and type.
// @Tags services
// @Produce json
// @Param category query string false "Service category"
// @Param type query string false "free or premium"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /services [get]
func (h *CatalogHandler) listServices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	category := r.URL.Query().Get("category")
	serviceType := r.URL.Query().Get("type")

	views, err := h.catalogSvc.ListServices(r.Context(), category, serviceType)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list services")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Success: false, Error: "failed to fetch services"})
		return
	}
	if views == nil {
		views = []model.ServiceView{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.ServiceListResponse{Success: true, Data: views, Count: len(views)})
}
