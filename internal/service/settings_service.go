package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"mail-settings/internal/domain"
	"mail-settings/internal/repository"
)

// SettingsService is the fetch/save contract shared by the local service and
// the RPC client.
type SettingsService interface {
	Fetch(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

type settingsService struct {
	repo   repository.SettingsRepository
	logger *log.Logger
}

func NewSettingsService(repo repository.SettingsRepository, logger *log.Logger) SettingsService {
	if logger == nil {
		logger = log.Default()
	}
	return &settingsService{repo: repo, logger: logger.WithPrefix("settings")}
}

func (s *settingsService) Fetch(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// Save always receives the full record; there are no partial updates.
func (s *settingsService) Save(ctx context.Context, settings *domain.Settings) error {
	if settings == nil {
		return errors.New("settings are required")
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("save failed", "err", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Debug("settings saved", "colorTheme", settings.ColorTheme)
	return nil
}
