package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository defines access to profiles and per-user preferences.
type UserRepository interface {
	CreateProfile(ctx context.Context, p *model.Profile) error
	GetProfile(ctx context.Context, userID string) (*model.Profile, error)
	GetPreferences(ctx context.Context, userID string) (*model.UserPreferences, error)
	UpsertPreferences(ctx context.Context, p *model.UserPreferences) error
}

type userRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepo creates a new UserRepository.
func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepo{pool: pool}
}

func (r *userRepo) CreateProfile(ctx context.Context, p *model.Profile) error {
	const q = `
        INSERT INTO profiles (user_id, display_name, birth_date, zodiac_sign, avatar_url, bio, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        ON CONFLICT (user_id) DO UPDATE
        SET display_name = EXCLUDED.display_name,
            birth_date = EXCLUDED.birth_date,
            zodiac_sign = EXCLUDED.zodiac_sign,
            avatar_url = EXCLUDED.avatar_url,
            bio = EXCLUDED.bio,
            updated_at = NOW()
        RETURNING created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, q, p.UserID, p.DisplayName, p.BirthDate, p.ZodiacSign, p.AvatarURL, p.Bio).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile for user %s: %w", p.UserID, err)
	}
	return nil
}

func (r *userRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	const q = `
        SELECT user_id, display_name, birth_date, zodiac_sign, avatar_url, bio, created_at, updated_at
        FROM profiles
        WHERE user_id = $1
    `
	var p model.Profile
	err := r.pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.DisplayName, &p.BirthDate, &p.ZodiacSign, &p.AvatarURL, &p.Bio, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch profile for user %s: %w", userID, err)
	}
	return &p, nil
}

func (r *userRepo) GetPreferences(ctx context.Context, userID string) (*model.UserPreferences, error) {
	const q = `
        SELECT user_id, credits_balance, daily_horoscope_enabled, email_notifications, favorite_services, preferred_reading_time, created_at, updated_at
        FROM user_preferences
        WHERE user_id = $1
    `
	var p model.UserPreferences
	err := r.pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.CreditsBalance, &p.DailyHoroscopeEnabled, &p.EmailNotifications, &p.FavoriteServices, &p.PreferredReadingTime, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch preferences for user %s: %w", userID, err)
	}
	return &p, nil
}

func (r *userRepo) UpsertPreferences(ctx context.Context, p *model.UserPreferences) error {
	// credits_balance is server-owned; the upsert keeps the stored
	// balance rather than accepting a client value.
	const q = `
        INSERT INTO user_preferences (user_id, credits_balance, daily_horoscope_enabled, email_notifications, favorite_services, preferred_reading_time, created_at, updated_at)
        VALUES ($1, 0, $2, $3, $4, $5, NOW(), NOW())
        ON CONFLICT (user_id) DO UPDATE
        SET daily_horoscope_enabled = EXCLUDED.daily_horoscope_enabled,
            email_notifications = EXCLUDED.email_notifications,
            favorite_services = EXCLUDED.favorite_services,
            preferred_reading_time = EXCLUDED.preferred_reading_time,
            updated_at = NOW()
        RETURNING credits_balance, created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, q, p.UserID, p.DailyHoroscopeEnabled, p.EmailNotifications, p.FavoriteServices, p.PreferredReadingTime).
		Scan(&p.CreditsBalance, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert preferences for user %s: %w", p.UserID, err)
	}
	return nil
}
