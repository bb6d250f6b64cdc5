package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HoroscopeRepository defines read access to published horoscopes.
type HoroscopeRepository interface {
	GetForDate(ctx context.Context, sign string, date time.Time, horoscopeType string) (*model.Horoscope, error)
}

type horoscopeRepo struct {
	pool *pgxpool.Pool
}

// NewHoroscopeRepo creates a new HoroscopeRepository.
func NewHoroscopeRepo(pool *pgxpool.Pool) HoroscopeRepository {
	return &horoscopeRepo{pool: pool}
}

func (r *horoscopeRepo) GetForDate(ctx context.Context, sign string, date time.Time, horoscopeType string) (*model.Horoscope, error) {
	const q = `
        SELECT id, zodiac_sign, date_for, horoscope_type, content, love_forecast, career_forecast, health_forecast, lucky_numbers, lucky_colors, created_at
        FROM horoscopes
        WHERE zodiac_sign = $1 AND date_for = $2 AND horoscope_type = $3
    `
	var h model.Horoscope
	err := r.pool.QueryRow(ctx, q, sign, date, horoscopeType).Scan(
		&h.ID,
		&h.ZodiacSign,
		&h.DateFor,
		&h.HoroscopeType,
		&h.Content,
		&h.LoveForecast,
		&h.CareerForecast,
		&h.HealthForecast,
		&h.LuckyNumbers,
		&h.LuckyColors,
		&h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch %s horoscope for %s: %w", horoscopeType, sign, err)
	}
	return &h, nil
}
