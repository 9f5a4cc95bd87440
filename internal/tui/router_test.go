package tui

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mail-settings/internal/domain"
	"mail-settings/internal/i18n"
	"mail-settings/internal/theme"
)

type fakeSettingsService struct {
	mu       sync.Mutex
	settings *domain.Settings
	saveErr  error
	saved    []*domain.Settings
	fetches  int
}

func (f *fakeSettingsService) Fetch(ctx context.Context) (*domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	return f.settings.Clone(), nil
}

func (f *fakeSettingsService) Save(ctx context.Context, s *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, s.Clone())
	if f.saveErr != nil {
		return f.saveErr
	}
	f.settings = s.Clone()
	return nil
}

func (f *fakeSettingsService) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func storedSettings(c domain.ColorTheme) *domain.Settings {
	s := domain.DefaultSettings()
	s.ColorTheme = c
	s.Timezone = "Europe/Berlin"
	s.TrustedSenders = []string{"boss@example.com"}
	s.Extra = map[string]json.RawMessage{"futureFlag": json.RawMessage(`true`)}
	return s
}

func testDeps(svc *fakeSettingsService, system, choice domain.ColorTheme) Deps {
	return Deps{
		Settings: svc,
		Themes: theme.NewManager(
			theme.WithSystemDetector(func() domain.ColorTheme { return system }),
			theme.WithColorTheme(choice),
		),
		Catalog:        i18n.MustNew("en"),
		Logger:         log.New(io.Discard),
		ToastDuration:  time.Hour,
		RequestTimeout: time.Second,
	}
}

// drain runs cmd and returns the messages that arrive quickly. Long ticks
// are dropped, spinner ticks are skipped so animations do not loop.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(150 * time.Millisecond):
		return nil
	}

	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	case spinner.TickMsg, transitionFrameMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// pump feeds the messages produced by cmd back into m until it settles.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()

	queue := drain(cmd)
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 100, "model did not settle")
		msg := queue[0]
		queue = queue[1:]

		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, drain(next)...)
	}
	return m
}

func press(t *testing.T, m tea.Model, k tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	return m.Update(k)
}

var (
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySave     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}}
	keyQuit     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestResolveSection(t *testing.T) {
	tests := []struct {
		route     string
		want      domain.Section
		wantFound bool
	}{
		{route: "", want: domain.SectionGeneral, wantFound: true},
		{route: "general", want: domain.SectionGeneral, wantFound: true},
		{route: "connections", want: domain.SectionConnections, wantFound: true},
		{route: "security", want: domain.SectionSecurity, wantFound: true},
		{route: "appearance", want: domain.SectionAppearance, wantFound: true},
		{route: "shortcuts", want: domain.SectionShortcuts, wantFound: true},
		{route: "notifications", want: domain.SectionNotifications, wantFound: true},
		{route: "labels", want: domain.SectionLabels, wantFound: true},
		{route: "billing", wantFound: false},
		{route: "Appearance", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got, found := ResolveSection(tt.route)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSettingsModel_DispatchesEverySection(t *testing.T) {
	for _, s := range domain.Sections() {
		t.Run(s.Key(), func(t *testing.T) {
			svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
			m := NewSettingsModel(s.Key(), testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem))

			section, found := m.Section()
			require.True(t, found)
			assert.Equal(t, s, section)
			require.NotNil(t, m.page)

			if s == domain.SectionAppearance {
				_, ok := m.page.(AppearanceModel)
				assert.True(t, ok)
			}

			settled := pump(t, m, m.Init())
			assert.NotContains(t, settled.View(), "Settings page not found")
		})
	}
}

func TestSettingsModel_NoRouteIsGeneral(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	m := NewSettingsModel("", testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem))

	section, found := m.Section()
	assert.True(t, found)
	assert.Equal(t, domain.SectionGeneral, section)

	settled := pump(t, m, m.Init())
	assert.Contains(t, settled.View(), "Europe/Berlin")
}

func TestSettingsModel_UnknownSectionRendersNotFound(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	m := NewSettingsModel("billing", testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem))

	_, found := m.Section()
	assert.False(t, found)
	assert.Nil(t, m.Init())
	assert.Contains(t, m.View(), "Settings page not found")
	assert.Equal(t, 0, svc.fetchCount())

	t.Run("localized", func(t *testing.T) {
		deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem)
		deps.Catalog = i18n.MustNew("de")
		m := NewSettingsModel("billing", deps)
		assert.NotContains(t, m.View(), "Settings page not found")
	})
}

func TestSettingsModel_TabNavigation(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	deps := testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem)

	tests := []struct {
		name  string
		route string
		key   tea.KeyMsg
		want  domain.Section
	}{
		{name: "tab moves forward", route: "general", key: keyTab, want: domain.SectionConnections},
		{name: "shift+tab wraps to the end", route: "general", key: keyShiftTab, want: domain.SectionLabels},
		{name: "tab wraps to the start", route: "labels", key: keyTab, want: domain.SectionGeneral},
		{name: "not found recovers to general", route: "billing", key: keyTab, want: domain.SectionGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, NewSettingsModel(tt.route, deps), tt.key)
			section, found := m.(SettingsModel).Section()
			assert.True(t, found)
			assert.Equal(t, tt.want, section)
		})
	}
}

func TestSettingsModel_Quit(t *testing.T) {
	svc := &fakeSettingsService{settings: storedSettings(domain.ColorThemeDark)}
	m, cmd := press(t, NewSettingsModel("general", testDeps(svc, domain.ColorThemeDark, domain.ColorThemeSystem)), keyQuit)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}
