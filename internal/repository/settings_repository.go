package repository

import (
	"context"

	"mail-settings/internal/domain"
)

// SettingsRepository stores the single settings record of the mailbox owner.
type SettingsRepository interface {
	// Get returns the stored record, or domain.DefaultSettings when nothing
	// has been saved yet.
	Get(ctx context.Context) (*domain.Settings, error)
	// Save replaces the stored record with s.
	Save(ctx context.Context, s *domain.Settings) error
}
