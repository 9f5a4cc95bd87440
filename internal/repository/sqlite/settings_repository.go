package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mail-settings/internal/domain"
	"mail-settings/internal/repository"
)

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

type SettingsRepository struct {
	db *DB
}

func NewSettingsRepository(db *DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type dbSettings struct {
	ID         int64     `db:"id"`
	ColorTheme string    `db:"color_theme"`
	Document   string    `db:"document"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (ds *dbSettings) toSettings() (*domain.Settings, error) {
	var s domain.Settings
	if err := json.Unmarshal([]byte(ds.Document), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings document: %w", err)
	}

	// the column is authoritative for the theme
	s.ColorTheme = domain.ColorTheme(ds.ColorTheme)
	return &s, nil
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var ds dbSettings
	err := r.db.GetContext(ctx, &ds, `
		SELECT id, color_theme, document, created_at, updated_at
		FROM user_settings
		WHERE id = 1
	`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return ds.toSettings()
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.Settings) error {
	if s == nil {
		return errors.New("settings cannot be nil")
	}

	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_settings (id, color_theme, document)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			color_theme = excluded.color_theme,
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP
	`, string(s.ColorTheme), string(doc))
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// UpdatedAt reports when the record was last written; zero if never.
func (r *SettingsRepository) UpdatedAt(ctx context.Context) (time.Time, error) {
	var updated time.Time
	err := r.db.GetContext(ctx, &updated, `SELECT updated_at FROM user_settings WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("failed to get settings timestamp: %w", err)
	}
	return updated, nil
}
