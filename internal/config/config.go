package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment        string `envconfig:"ENV" default:"development"`
	Port               string `envconfig:"PORT" default:"8080"`
	SiteURL            string `envconfig:"SITE_URL" default:"http://localhost:5173"`
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	JWTSecret          string `envconfig:"SUPABASE_JWT_SECRET" required:"true"`

	// Stripe settings. The secret key may be left empty when
	// STRIPE_SECRET_NAME is set, in which case it is fetched from
	// Secret Manager at startup.
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeSecretName    string `envconfig:"STRIPE_SECRET_NAME"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`

	// Price IDs for the recurring offerings.
	StripePriceMoonGuide     string `envconfig:"STRIPE_PRICE_MOON_GUIDE"`
	StripePriceAstroCalendar string `envconfig:"STRIPE_PRICE_ASTRO_CALENDAR"`
	StripePriceCouples       string `envconfig:"STRIPE_PRICE_COUPLES"`
	StripePriceBase          string `envconfig:"STRIPE_PRICE_BASE"`

	// Redis catalog cache. Leaving REDIS_ADDR empty disables caching.
	RedisAddr          string `envconfig:"REDIS_ADDR"`
	RedisPassword      string `envconfig:"REDIS_PASSWORD"`
	RedisDB            int    `envconfig:"REDIS_DB" default:"0"`
	RedisKeyPrefix     string `envconfig:"REDIS_KEY_PREFIX" default:"cosmic"`
	CatalogCacheTTLSec int    `envconfig:"CATALOG_CACHE_TTL_SEC" default:"300"`

	// GCP settings for Pub/Sub events and Secret Manager.
	GCPProjectID        string `envconfig:"GCP_PROJECT_ID"`
	PubSubReadingsTopic string `envconfig:"PUBSUB_READINGS_TOPIC" default:"reading-events"`

	// S3-compatible storage for archived reading content.
	S3URL       string `envconfig:"SUPABASE_S3_URL"`
	S3Bucket    string `envconfig:"SUPABASE_S3_BUCKET" default:"readings"`
	S3Region    string `envconfig:"SUPABASE_S3_REGION" default:"us-east-1"`
	S3AccessKey string `envconfig:"SUPABASE_S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"SUPABASE_S3_SECRET_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
