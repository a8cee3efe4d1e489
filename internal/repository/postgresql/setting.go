package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/asistpro/attendance-backend-go/internal/domain/setting"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepository{db: db}
}

// Get implements setting.SettingRepository.
func (r *settingRepository) Get(ctx context.Context, key string) (setting.Setting, error) {
	q := r.db.GetQuerier(ctx)

	query := `SELECT key, value, updated_at FROM global_settings WHERE key = $1`

	var s setting.Setting
	err := q.QueryRow(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}

	return s, nil
}

// GetBool implements setting.SettingRepository.
func (r *settingRepository) GetBool(ctx context.Context, key string, fallback bool) (bool, error) {
	s, err := r.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return fallback, nil
		}
		return false, err
	}

	value, err := strconv.ParseBool(s.Value)
	if err != nil {
		return false, fmt.Errorf("setting %s has non-boolean value %q: %w", key, s.Value, err)
	}

	return value, nil
}

// Set implements setting.SettingRepository.
func (r *settingRepository) Set(ctx context.Context, key string, value string) (setting.Setting, error) {
	q := r.db.GetQuerier(ctx)

	query := `
		INSERT INTO global_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at
	`

	var s setting.Setting
	if err := q.QueryRow(ctx, query, key, value).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		return setting.Setting{}, fmt.Errorf("failed to set setting: %w", err)
	}

	return s, nil
}
