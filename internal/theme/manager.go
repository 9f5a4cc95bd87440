package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"mail-settings/internal/domain"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

// Manager is the process-wide theming mechanism: it holds the user's current
// color theme choice and maps it to a palette. Writers race freely; the last
// SetColorTheme wins.
type Manager struct {
	mu           sync.RWMutex
	themes       map[string]*Theme
	choice       domain.ColorTheme
	darkPalette  string
	lightPalette string
	detect       func() domain.ColorTheme
}

type ManagerOption func(*Manager)

// WithSystemDetector replaces terminal background detection.
func WithSystemDetector(detect func() domain.ColorTheme) ManagerOption {
	return func(m *Manager) {
		m.detect = detect
	}
}

// WithPalettes picks the palettes the dark and light themes resolve to.
// Unknown names and palettes built for the other background are ignored.
func WithPalettes(dark, light string) ManagerOption {
	return func(m *Manager) {
		if t, ok := m.themes[dark]; ok && t.IsDark() {
			m.darkPalette = dark
		}
		if t, ok := m.themes[light]; ok && !t.IsDark() {
			m.lightPalette = light
		}
	}
}

// WithColorTheme sets the initial choice.
func WithColorTheme(c domain.ColorTheme) ManagerOption {
	return func(m *Manager) {
		m.choice = c
	}
}

func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		themes:       GetPredefinedThemes(),
		choice:       domain.ColorThemeSystem,
		darkPalette:  PaletteDark,
		lightPalette: PaletteLight,
		detect:       detectTerminalTheme,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	detectOnce     sync.Once
	detectedSystem domain.ColorTheme
)

// asks the terminal once; the answer does not change during a session
func detectTerminalTheme() domain.ColorTheme {
	detectOnce.Do(func() {
		detectedSystem = domain.ColorThemeLight
		if lipgloss.HasDarkBackground() {
			detectedSystem = domain.ColorThemeDark
		}
	})
	return detectedSystem
}

// SetColorTheme records the new choice. The empty value is stored as is and
// resolves like system.
func (m *Manager) SetColorTheme(c domain.ColorTheme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.choice = c
}

// ColorTheme returns the current choice.
func (m *Manager) ColorTheme() domain.ColorTheme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.choice
}

// SystemTheme is the dark/light preference reported by the terminal.
func (m *Manager) SystemTheme() domain.ColorTheme {
	return m.detect()
}

// Resolve maps a choice to dark or light.
func (m *Manager) Resolve(c domain.ColorTheme) domain.ColorTheme {
	switch c {
	case domain.ColorThemeDark, domain.ColorThemeLight:
		return c
	}
	if sys := m.SystemTheme(); sys == domain.ColorThemeDark || sys == domain.ColorThemeLight {
		return sys
	}
	return domain.ColorThemeDark
}

// Resolved is Resolve applied to the current choice.
func (m *Manager) Resolved() domain.ColorTheme {
	return m.Resolve(m.ColorTheme())
}

// PaletteFor returns the palette a choice resolves to.
func (m *Manager) PaletteFor(c domain.ColorTheme) *Theme {
	m.mu.RLock()
	dark, light := m.darkPalette, m.lightPalette
	m.mu.RUnlock()

	name := dark
	if m.Resolve(c) == domain.ColorThemeLight {
		name = light
	}
	t, err := m.GetTheme(name)
	if err != nil {
		return DarkTheme()
	}
	return t
}

// Current returns the palette for the current choice.
func (m *Manager) Current() *Theme {
	return m.PaletteFor(m.ColorTheme())
}

// returns a copy of the named palette
func (m *Manager) GetTheme(name string) (*Theme, error) {
	theme, exists := m.themes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	c := *theme
	return &c, nil
}

// returns all available palette names
func (m *Manager) ListThemes() []string {
	return GetThemeNames()
}

// checks if a palette exists
func (m *Manager) ThemeExists(name string) bool {
	_, exists := m.themes[name]
	return exists
}

var (
	globalMu      sync.RWMutex
	globalManager = NewManager()
)

// Global returns the process-wide manager.
func Global() *Manager {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalManager
}

// SetGlobal replaces the process-wide manager, e.g. after loading config.
func SetGlobal(m *Manager) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = m
}

// returns palette by name using the global manager
func GetTheme(name string) (*Theme, error) {
	return Global().GetTheme(name)
}

// returns all available palette names using the global manager
func ListThemes() []string {
	return Global().ListThemes()
}

// checks if a palette exists using the global manager
func ThemeExists(name string) bool {
	return Global().ThemeExists(name)
}

// returns the palette of the global manager's current choice
func Current() *Theme {
	return Global().Current()
}
