package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mail-settings/internal/domain"
	"mail-settings/internal/theme"
)

// loadedAppearance returns the router on the appearance section with the
// settings already fetched
func loadedAppearance(t *testing.T, deps Deps) SettingsModel {
	t.Helper()
	m := NewSettingsModel("appearance", deps)
	return pump(t, m, m.Init()).(SettingsModel)
}

func appearancePage(t *testing.T, m tea.Model) AppearanceModel {
	t.Helper()
	p, ok := m.(SettingsModel).page.(AppearanceModel)
	require.True(t, ok)
	return p
}

func visibleToasts(m tea.Model) []toast {
	return m.(SettingsModel).toaster.toasts
}

// moveTo puts the cursor on c and selects it
func moveTo(t *testing.T, m tea.Model, c domain.ColorTheme) tea.Model {
	t.Helper()
	p := appearancePage(t, m)
	target := p.optionIndex(c)
	for p.cursor < target {
		m, _ = m.Update(keyDown)
		p = appearancePage(t, m)
	}
	for p.cursor > target {
		m, _ = m.Update(keyUp)
		p = appearancePage(t, m)
	}
	m, cmd := m.Update(keyEnter)
	return pump(t, m, cmd)
}

func TestAppearance_LoadingShowsSpinnerUntilFetched(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeLight)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem)

	m := NewSettingsModel("appearance", deps)
	assert.Contains(t, m.View(), "Loading settings...")
	assert.NotContains(t, m.View(), "Save changes")

	settled := pump(t, m, m.Init())
	assert.Contains(t, settled.View(), "Save changes")
	assert.Equal(t, domain.ColorThemeLight, appearancePage(t, settled).Draft())
}

func TestAppearance_DraftFallsBackToManagerChoice(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeUnset)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeLight)

	m := loadedAppearance(t, deps)
	assert.Equal(t, domain.ColorThemeLight, appearancePage(t, m).Draft())
}

func TestAppearance_SelectDarkAndSave(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeLight)}
	deps := testDeps(svc, domain.ColorThemeLight, domain.ColorThemeLight)

	var m tea.Model = loadedAppearance(t, deps)
	m = moveTo(t, m, domain.ColorThemeDark)

	// applied before anything is saved
	assert.Equal(t, domain.ColorThemeDark, deps.Themes.ColorTheme())
	assert.Empty(t, svc.saved)
	assert.Equal(t, "editing", appearancePage(t, m).State())

	m, cmd := m.Update(keySave)
	require.NotNil(t, cmd)
	assert.True(t, appearancePage(t, m).IsSaving())
	assert.Contains(t, m.View(), "Saving...")

	m = pump(t, m, cmd)

	require.Len(t, svc.saved, 1)
	assert.Equal(t, domain.ColorThemeDark, svc.saved[0].ColorTheme)
	assert.Equal(t, "Europe/Berlin", svc.saved[0].Timezone)
	assert.Equal(t, []string{"boss@example.com"}, svc.saved[0].TrustedSenders)

	toasts := visibleToasts(m)
	require.Len(t, toasts, 1)
	assert.Equal(t, toastSuccess, toasts[0].kind)
	assert.Equal(t, "Settings saved", toasts[0].text)

	assert.Equal(t, 2, svc.fetchCount())
	assert.False(t, appearancePage(t, m).IsSaving())
	assert.Equal(t, "idle", appearancePage(t, m).State())
	assert.Contains(t, m.View(), "Save changes")
}

func TestAppearance_FailedSaveKeepsTheme(t *testing.T) {
	svc := &fakeSettingsService{
		settings: storedSettings(domain.ColorThemeDark),
		saveErr:  errors.New("database is locked"),
	}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeDark)

	var m tea.Model = loadedAppearance(t, deps)
	m = moveTo(t, m, domain.ColorThemeLight)
	assert.Equal(t, domain.ColorThemeLight, deps.Themes.ColorTheme())

	m, cmd := m.Update(keySave)
	m = pump(t, m, cmd)

	require.Len(t, svc.saved, 1)
	assert.Equal(t, domain.ColorThemeLight, svc.saved[0].ColorTheme)

	toasts := visibleToasts(m)
	require.Len(t, toasts, 1)
	assert.Equal(t, toastError, toasts[0].kind)
	assert.Equal(t, "Failed to save settings", toasts[0].text)

	assert.Equal(t, 2, svc.fetchCount())
	assert.False(t, appearancePage(t, m).IsSaving())

	// no rollback
	assert.Equal(t, domain.ColorThemeLight, deps.Themes.ColorTheme())
	assert.Equal(t, domain.ColorThemeLight, appearancePage(t, m).Draft())
}

func TestAppearance_SubmitWithoutChangeSavesRecordAsLoaded(t *testing.T) {
	stored := storedSettings(domain.ColorThemeSystem)
	svc := &fakeSettingsService{settings: stored.Clone()}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem)

	var m tea.Model = loadedAppearance(t, deps)
	m, cmd := m.Update(keySave)
	pump(t, m, cmd)

	require.Len(t, svc.saved, 1)
	assert.Equal(t, stored, svc.saved[0])
	assert.Equal(t, stored, svc.settings)
}

func TestAppearance_SubmitIgnoredWhileSavingOrUnloaded(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeDark)

	t.Run("before load", func(t *testing.T) {
		m := NewSettingsModel("appearance", deps)
		next, cmd := m.Update(keySave)
		assert.Nil(t, cmd)
		assert.False(t, appearancePage(t, next).IsSaving())
	})

	t.Run("while saving", func(t *testing.T) {
		var m tea.Model = loadedAppearance(t, deps)
		m, first := m.Update(keySave)
		require.NotNil(t, first)

		m, second := m.Update(keySave)
		assert.Nil(t, second)
		assert.True(t, appearancePage(t, m).IsSaving())

		pump(t, m, first)
		assert.Len(t, svc.saved, 1)
	})
}

func TestAppearance_Transitions(t *testing.T) {
	tests := []struct {
		name        string
		supported   bool
		system      domain.ColorTheme
		choice      domain.ColorTheme
		selected    domain.ColorTheme
		wantAnimate bool
	}{
		{name: "resolved theme changes", supported: true, system: domain.ColorThemeDark, choice: domain.ColorThemeDark, selected: domain.ColorThemeLight, wantAnimate: true},
		{name: "system already resolves to dark", supported: true, system: domain.ColorThemeDark, choice: domain.ColorThemeSystem, selected: domain.ColorThemeDark, wantAnimate: false},
		{name: "dark to system on dark terminal", supported: true, system: domain.ColorThemeDark, choice: domain.ColorThemeDark, selected: domain.ColorThemeSystem, wantAnimate: false},
		{name: "light to system on dark terminal", supported: true, system: domain.ColorThemeDark, choice: domain.ColorThemeLight, selected: domain.ColorThemeSystem, wantAnimate: true},
		{name: "same theme again", supported: true, system: domain.ColorThemeLight, choice: domain.ColorThemeLight, selected: domain.ColorThemeLight, wantAnimate: false},
		{name: "unsupported terminal", supported: false, system: domain.ColorThemeDark, choice: domain.ColorThemeDark, selected: domain.ColorThemeLight, wantAnimate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSettingsService{settings: storedSettings(tt.choice)}
			deps := testDeps(svc, tt.system, tt.choice)
			deps.Transitions = tt.supported

			p := NewAppearanceModel(deps)
			p.settings = svc.settings.Clone()
			p.loaded = true

			p, cmd := p.selectTheme(tt.selected)
			assert.Equal(t, tt.selected, deps.Themes.ColorTheme())
			assert.Equal(t, tt.wantAnimate, p.Transitioning())
			assert.Equal(t, tt.wantAnimate, cmd != nil)

			// submit saves whether or not anything animated
			p, cmd = p.submit()
			require.NotNil(t, cmd)
			assert.True(t, p.IsSaving())
			drain(cmd)

			require.Len(t, svc.saved, 1)
			assert.Equal(t, tt.selected, svc.saved[0].ColorTheme)
		})
	}
}

func TestAppearance_TransitionRunsToTarget(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeDark)
	deps.Transitions = true

	p := NewAppearanceModel(deps)
	p, _ = p.selectTheme(domain.ColorThemeLight)

	palette, animating := p.palette()
	require.True(t, animating)
	assert.Equal(t, strings.ToLower(theme.DarkTheme().BgPrimary), strings.ToLower(palette.BgPrimary))

	var next page = p
	// stale frames from an earlier transition are ignored
	next, _ = next.Update(transitionFrameMsg{id: p.transitionID - 1})
	assert.True(t, next.(AppearanceModel).Transitioning())

	for i := 0; i < theme.DefaultTransitionFrames; i++ {
		next, _ = next.Update(transitionFrameMsg{id: p.transitionID})
	}
	assert.False(t, next.(AppearanceModel).Transitioning())
	_, animating = next.(AppearanceModel).palette()
	assert.False(t, animating)
}

func TestAppearance_ThemeFieldHiddenWithoutAnyTheme(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeUnset)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeUnset)

	m := loadedAppearance(t, deps)
	view := m.View()
	assert.NotContains(t, view, "Dark")
	assert.Contains(t, view, "Save changes")

	next, _ := m.Update(keyEnter)
	assert.Equal(t, domain.ColorThemeUnset, deps.Themes.ColorTheme())
	assert.Equal(t, "idle", appearancePage(t, next).State())
}
