package sqlite

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mail-settings/internal/domain"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	tmpFile, err := os.CreateTemp("", "mailsettings_test_*.db")
	require.NoError(t, err)
	tmpFile.Close()

	dbPath := tmpFile.Name()

	db, err := NewDB(Config{Path: dbPath})
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return db, cleanup
}

func TestSettingsRepository_GetDefaults(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	ctx := context.Background()

	s, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), s)

	updated, err := repo.UpdatedAt(ctx)
	require.NoError(t, err)
	assert.True(t, updated.IsZero())
}

func TestSettingsRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	ctx := context.Background()

	t.Run("round trip keeps every field", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.Language = "fr"
		s.ColorTheme = domain.ColorThemeDark
		s.TrustedSenders = []string{"boss@example.com"}
		s.Labels = []domain.Label{{Name: "Work", Color: "#ff0000"}}
		s.Extra = map[string]json.RawMessage{"autoRead": json.RawMessage(`true`)}

		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, s, got)

		updated, err := repo.UpdatedAt(ctx)
		require.NoError(t, err)
		assert.False(t, updated.IsZero())
	})

	t.Run("save replaces the record", func(t *testing.T) {
		current, err := repo.Get(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, current.WithColorTheme(domain.ColorThemeLight)))

		got, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ColorThemeLight, got.ColorTheme)
		assert.Equal(t, "fr", got.Language)
		assert.Contains(t, got.Extra, "autoRead")
	})

	t.Run("save unchanged record is idempotent", func(t *testing.T) {
		before, err := repo.Get(ctx)
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, before))

		after, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("invalid theme is rejected", func(t *testing.T) {
		s := domain.DefaultSettings()
		s.ColorTheme = "neon"

		err := repo.Save(ctx, s)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidColorTheme)
	})

	t.Run("nil record is rejected", func(t *testing.T) {
		assert.Error(t, repo.Save(ctx, nil))
	})
}
