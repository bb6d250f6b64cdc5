package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/api/v1/handler"
	"app/internal/archive"
	"app/internal/cache"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/pubsub"
	"app/internal/repository"
	"app/internal/secrets"
	"app/internal/service"
	"app/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *pgxpool.Pool, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("App environment loaded")

	ctx := context.Background()

	// 1. Open DB pool and run migrations
	pool, err := store.New(ctx, cfg.DBConnectionString, cfg.Environment)
	if err != nil {
		logger.Error().Msgf("Failed to open DB connection: %v", err)
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// 2. Resolve the Stripe key from Secret Manager when not set directly
	if cfg.StripeSecretKey == "" && cfg.StripeSecretName != "" {
		key, err := secrets.FetchSecret(ctx, cfg.GCPProjectID, cfg.StripeSecretName)
		if err != nil {
			logger.Error().Msgf("Failed to fetch Stripe key from Secret Manager: %v", err)
			return nil, nil, err
		}
		cfg.StripeSecretKey = key
	}

	// 3. Optional Redis catalog cache
	var catalogCache *cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache, err = cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, catalog caching disabled")
			catalogCache = nil
		}
	}

	// 4. Optional Pub/Sub publisher for reading.created events
	var publisher pubsub.Publisher
	if cfg.GCPProjectID != "" {
		p, err := pubsub.NewPublisher(ctx, cfg.GCPProjectID)
		if err != nil {
			logger.Warn().Err(err).Msg("Pub/Sub unavailable, reading events disabled")
		} else {
			publisher = p
		}
	}

	// 5. Optional S3 archiver for delivered readings
	var archiver service.ReadingArchiver
	if cfg.S3URL != "" {
		a, err := archive.New(ctx, cfg, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("S3 unavailable, reading archival disabled")
		} else {
			archiver = a
		}
	}

	// 6. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 7. Initialize repositories & services & handlers
	serviceRepo := repository.NewServiceRepo(pool)
	orderRepo := repository.NewOrderRepo(pool)
	readingRepo := repository.NewReadingRepo(pool)
	userRepo := repository.NewUserRepo(pool)
	horoscopeRepo := repository.NewHoroscopeRepo(pool)
	compatRepo := repository.NewCompatibilityRepo(pool)
	subRepo := repository.NewSubscriptionRepo(pool)

	catalogSvc := service.NewCatalogService(serviceRepo, catalogCache, time.Duration(cfg.CatalogCacheTTLSec)*time.Second, logger)
	checkoutSvc := service.NewCheckoutService(cfg, serviceRepo, orderRepo, logger)
	subSvc := service.NewSubscriptionService(subRepo, logger)
	userSvc := service.NewUserService(userRepo, logger)
	readingSvc := service.NewReadingService(readingRepo, logger)
	horoscopeSvc := service.NewHoroscopeService(horoscopeRepo, logger)
	compatSvc := service.NewCompatibilityService(compatRepo, logger)

	stripeSvc := service.NewStripeService(cfg, subSvc, logger)
	paymentSvc := service.NewPaymentService(stripeSvc, orderRepo, readingRepo, serviceRepo, publisher, archiver, cfg.PubSubReadingsTopic, logger)
	stripeSvc.SetPaymentService(paymentSvc)

	catalogHandler := handler.NewCatalogHandler(catalogSvc, logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutSvc, validate, logger)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, stripeSvc, validate, logger)
	readingHandler := handler.NewReadingHandler(readingSvc, logger)
	userHandler := handler.NewUserHandler(userSvc, validate, logger)
	horoscopeHandler := handler.NewHoroscopeHandler(horoscopeSvc, logger)
	compatHandler := handler.NewCompatibilityHandler(compatSvc, userSvc, validate, logger)
	subHandler := handler.NewSubscriptionHandler(subSvc, logger)
	authHandler := handler.NewAuthHandler(logger)

	// 8. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// 9. Create ServeMux router
	mux := http.NewServeMux()

	// Create a subrouter for API v1 with the /v1 prefix
	apiV1Mux := http.NewServeMux()
	catalogHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	checkoutHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	paymentHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	readingHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	userHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	horoscopeHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	compatHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	subHandler.RegisterRoutes(apiV1Mux, authMiddleware)
	authHandler.RegisterRoutes(apiV1Mux, authMiddleware)

	// Mount the API v1 routes under /v1
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Redirect all other root-level requests to /v1/{path}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Avoid redirect loops by checking if already under /v1
		if strings.HasPrefix(r.URL.Path, "/v1/") {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/v1"+r.URL.Path, http.StatusMovedPermanently)
	})

	// 10. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.SiteURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(c.Handler(mux)), pool, nil
}
