package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mail-settings/internal/domain"
)

type settingsRepositoryMock struct {
	GetFunc  func(ctx context.Context) (*domain.Settings, error)
	SaveFunc func(ctx context.Context, s *domain.Settings) error
}

func (m *settingsRepositoryMock) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return domain.DefaultSettings(), nil
}

func (m *settingsRepositoryMock) Save(ctx context.Context, s *domain.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSettingsService_Fetch(t *testing.T) {
	t.Run("returns repository record", func(t *testing.T) {
		expected := domain.DefaultSettings()
		expected.ColorTheme = domain.ColorThemeDark

		svc := NewSettingsService(&settingsRepositoryMock{
			GetFunc: func(ctx context.Context) (*domain.Settings, error) {
				return expected, nil
			},
		}, quietLogger())

		got, err := svc.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		dbErr := errors.New("database error")
		svc := NewSettingsService(&settingsRepositoryMock{
			GetFunc: func(ctx context.Context) (*domain.Settings, error) {
				return nil, dbErr
			},
		}, quietLogger())

		_, err := svc.Fetch(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestSettingsService_Save(t *testing.T) {
	t.Run("persists the full record", func(t *testing.T) {
		var saved *domain.Settings
		svc := NewSettingsService(&settingsRepositoryMock{
			SaveFunc: func(ctx context.Context, s *domain.Settings) error {
				saved = s
				return nil
			},
		}, quietLogger())

		s := domain.DefaultSettings()
		s.Language = "de"
		s.ColorTheme = domain.ColorThemeLight

		require.NoError(t, svc.Save(context.Background(), s))
		require.NotNil(t, saved)
		assert.Equal(t, "de", saved.Language)
		assert.Equal(t, domain.ColorThemeLight, saved.ColorTheme)
	})

	t.Run("rejects invalid theme before touching storage", func(t *testing.T) {
		called := false
		svc := NewSettingsService(&settingsRepositoryMock{
			SaveFunc: func(ctx context.Context, s *domain.Settings) error {
				called = true
				return nil
			},
		}, quietLogger())

		s := domain.DefaultSettings()
		s.ColorTheme = "invalid"

		err := svc.Save(context.Background(), s)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidColorTheme)
		assert.False(t, called)
	})

	t.Run("rejects nil", func(t *testing.T) {
		svc := NewSettingsService(&settingsRepositoryMock{}, quietLogger())
		assert.Error(t, svc.Save(context.Background(), nil))
	})

	t.Run("wraps storage error", func(t *testing.T) {
		svc := NewSettingsService(&settingsRepositoryMock{
			SaveFunc: func(ctx context.Context, s *domain.Settings) error {
				return errors.New("disk full")
			},
		}, quietLogger())

		err := svc.Save(context.Background(), domain.DefaultSettings())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
