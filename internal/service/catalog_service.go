package service

import (
	"context"
	"errors"
	"time"

	"app/internal/cache"
	"app/internal/catalog"
	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// CatalogService returns the purchasable offerings as UI-ready view
// models, optionally narrowed by category and free/premium type.
type CatalogService interface {
	ListServices(ctx context.Context, category, serviceType string) ([]model.ServiceView, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
}

type catalogService struct {
	repo     repository.ServiceRepository
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewCatalogService creates a CatalogService with a scoped logger. The
// cache may be nil; lookups then go straight to the repository.
func NewCatalogService(repo repository.ServiceRepository, c *cache.Cache, cacheTTL time.Duration, logger zerolog.Logger) CatalogService {
	return &catalogService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("service", "CatalogService").Logger(),
	}
}

func (s *catalogService) ListServices(ctx context.Context, category, serviceType string) ([]model.ServiceView, error) {
	// The cache stores raw rows, not views: ratings are recomputed per
	// fetch so cached responses don't freeze them.
	var services []model.Service
	err := s.cache.Get(ctx, &services, "catalog", category, serviceType)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn().Err(err).Msg("Catalog cache read failed, falling back to database")
		}
		services, err = s.repo.ListActive(ctx, category, serviceType)
		if err != nil {
			s.logger.Error().Err(err).Str("category", category).Str("type", serviceType).Msg("Failed to fetch services")
			return nil, err
		}
		if err := s.cache.Set(ctx, services, s.cacheTTL, "catalog", category, serviceType); err != nil {
			s.logger.Warn().Err(err).Msg("Catalog cache write failed")
		}
	}
	return catalog.ToViews(services), nil
}

func (s *catalogService) GetService(ctx context.Context, id string) (*model.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("service_id", id).Msg("Failed to fetch service")
		return nil, err
	}
	return svc, nil
}
