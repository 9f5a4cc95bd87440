package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"mail-settings/internal/domain"
	"mail-settings/internal/i18n"
	"mail-settings/internal/service"
	"mail-settings/internal/theme"
)

// Deps holds everything the settings screens need.
type Deps struct {
	Settings service.SettingsService
	Themes   *theme.Manager
	Catalog  *i18n.Catalog
	Logger   *log.Logger

	// Transitions enables the animated theme change.
	Transitions    bool
	ToastDuration  time.Duration
	RequestTimeout time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Themes == nil {
		d.Themes = theme.Global()
	}
	if d.Catalog == nil {
		d.Catalog = i18n.MustNew(i18n.DefaultLocale)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// page is one settings section screen
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(styles *theme.Styles, width int) string
}

// paletteOverride is implemented by pages that animate the palette
type paletteOverride interface {
	palette() (*theme.Theme, bool)
}

// ResolveSection maps the route segment to a section. An empty segment is
// the default section; an unknown one reports false.
func ResolveSection(route string) (domain.Section, bool) {
	if route == "" {
		return domain.DefaultSection, true
	}
	return domain.ParseSection(route)
}

// newPage builds the screen for a section.
func newPage(section domain.Section, deps Deps) page {
	switch section {
	case domain.SectionGeneral:
		return newSummaryPage(section, deps, generalRows)
	case domain.SectionConnections:
		return newSummaryPage(section, deps, connectionRows)
	case domain.SectionSecurity:
		return newSummaryPage(section, deps, securityRows)
	case domain.SectionAppearance:
		return NewAppearanceModel(deps)
	case domain.SectionShortcuts:
		return newShortcutsPage(deps)
	case domain.SectionNotifications:
		return newSummaryPage(section, deps, notificationRows)
	case domain.SectionLabels:
		return newSummaryPage(section, deps, labelRows)
	}
	panic(fmt.Sprintf("unhandled settings section %d", section))
}

// SettingsModel dispatches a route segment to one settings section.
type SettingsModel struct {
	deps    Deps
	route   string
	section domain.Section
	found   bool
	page    page

	toaster  toaster
	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

func NewSettingsModel(route string, deps Deps) SettingsModel {
	deps = deps.withDefaults()

	m := SettingsModel{
		deps:    deps,
		route:   route,
		toaster: newToaster(deps.ToastDuration),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   100,
		height:  30,
	}

	m.section, m.found = ResolveSection(route)
	if m.found {
		m.page = newPage(m.section, deps)
	} else {
		deps.Logger.Warn("unknown settings section", "route", route)
	}
	return m
}

// Section reports the active section and whether the route matched one.
func (m SettingsModel) Section() (domain.Section, bool) {
	return m.section, m.found
}

func (m SettingsModel) Init() tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Init()
}

func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastMsg:
		return m, m.toaster.upsert(msg)

	case toastExpiredMsg:
		m.toaster.expire(msg.id)
		return m, nil

	case saveResultMsg:
		// the toast outlives the page that started the save
		toastCmd := m.settleSaveToast(msg)
		if m.page == nil {
			return m, toastCmd
		}
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return m, tea.Batch(toastCmd, cmd)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextSection):
			return m.navigate(m.nextSection())

		case key.Matches(msg, m.keys.PrevSection):
			return m.navigate(m.prevSection())
		}
	}

	if m.page == nil {
		return m, nil
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func (m *SettingsModel) settleSaveToast(msg saveResultMsg) tea.Cmd {
	c := m.deps.Catalog
	if msg.err != nil {
		m.deps.Logger.Error("failed to save settings", "err", msg.err)
		return m.toaster.upsert(toastMsg{id: msg.toastID, kind: toastError, text: c.T("common.settings.failedToSave")})
	}
	return m.toaster.upsert(toastMsg{id: msg.toastID, kind: toastSuccess, text: c.T("common.settings.saved")})
}

func (m SettingsModel) nextSection() domain.Section {
	if !m.found {
		return domain.DefaultSection
	}
	return m.section.Next()
}

func (m SettingsModel) prevSection() domain.Section {
	if !m.found {
		return domain.DefaultSection
	}
	return m.section.Prev()
}

func (m SettingsModel) navigate(section domain.Section) (tea.Model, tea.Cmd) {
	m.section = section
	m.found = true
	m.route = section.Key()
	m.page = newPage(section, m.deps)
	return m, m.page.Init()
}

func (m SettingsModel) currentPalette() *theme.Theme {
	if p, ok := m.page.(paletteOverride); ok {
		if t, animating := p.palette(); animating {
			return t
		}
	}
	return m.deps.Themes.Current()
}

func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	styles := theme.NewStyles(m.currentPalette())
	c := m.deps.Catalog

	var body string
	if m.page == nil {
		body = styles.NotFound.Render(c.T("pages.error.settingsNotFound"))
	} else {
		body = m.page.View(styles, m.width)
	}

	parts := []string{m.renderTabs(styles), body}
	if toasts := m.toaster.view(styles); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, styles.TUIHelp.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m SettingsModel) renderTabs(styles *theme.Styles) string {
	c := m.deps.Catalog
	tabs := make([]string, 0, len(domain.Sections()))
	for _, s := range domain.Sections() {
		title := c.T("pages.settings." + s.Key() + ".title")
		if m.found && s == m.section {
			tabs = append(tabs, styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, styles.Tab.Render(title))
		}
	}
	return strings.Join(tabs, " ") + "\n"
}
