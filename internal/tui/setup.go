package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mail-settings/internal/domain"
	"mail-settings/internal/i18n"
	"mail-settings/internal/theme"
)

// SetupModel is the first-run wizard that picks the default color theme
type SetupModel struct {
	themes   *theme.Manager
	catalog  *i18n.Catalog
	onSave   func(domain.ColorTheme) error
	keys     keyMap
	options  []domain.ColorTheme
	selected int

	width     int
	height    int
	quitting  bool
	confirmed bool
	err       error
}

// NewSetupModel creates the wizard. onSave persists the choice once the user
// confirms it.
func NewSetupModel(themes *theme.Manager, catalog *i18n.Catalog, onSave func(domain.ColorTheme) error) SetupModel {
	if themes == nil {
		themes = theme.Global()
	}
	if catalog == nil {
		catalog = i18n.MustNew(i18n.DefaultLocale)
	}

	options := domain.ColorThemes()
	selected := 0
	for i, o := range options {
		if o == domain.ColorThemeSystem {
			selected = i
		}
	}

	return SetupModel{
		themes:   themes,
		catalog:  catalog,
		onSave:   onSave,
		keys:     defaultKeyMap(),
		options:  options,
		selected: selected,
		width:    100,
		height:   30,
	}
}

// Choice is the highlighted color theme.
func (m SetupModel) Choice() domain.ColorTheme {
	return m.options[m.selected]
}

// Confirmed reports whether the user accepted a theme.
func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

// Err is the error returned by onSave, if any.
func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.options)-1 {
				m.selected++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			choice := m.Choice()
			m.themes.SetColorTheme(choice)
			if m.onSave != nil {
				m.err = m.onSave(choice)
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	c := m.catalog

	if m.quitting {
		if m.confirmed {
			return ""
		}
		return c.T("setup.cancelled") + "\n"
	}

	palette := m.themes.PaletteFor(m.Choice())
	styles := theme.NewStyles(palette)

	leftWidth := max(m.width/3, 24)
	rightWidth := max(m.width-leftWidth-4, 30)

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	box := lipgloss.NewStyle().
		Height(m.height - 6).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(palette.BorderColor)).
		Padding(1)

	left := box.Width(leftWidth).Render(m.renderChoices(styles))
	right := box.Width(rightWidth).Render(m.renderPreview(styles, palette))

	header := styles.TUITitle.Render(c.T("setup.title"))
	subtitle := styles.TUISubtitle.Render(c.T("setup.subtitle"))
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, lipgloss.JoinHorizontal(lipgloss.Top, left, right), help)
}

func (m SetupModel) renderChoices(styles *theme.Styles) string {
	var b strings.Builder
	b.WriteString(styles.FieldLabel.Render(m.catalog.T("pages.settings.appearance.theme")))
	b.WriteString("\n\n")

	for i, o := range m.options {
		line := theme.Icon(o) + "  " + m.catalog.T("common.themes."+o.String())
		if i == m.selected {
			b.WriteString(styles.SelectedOption.Render("▶ " + line))
		} else {
			b.WriteString(styles.Option.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderPreview shows a sample settings card in the palette the choice
// resolves to
func (m SetupModel) renderPreview(styles *theme.Styles, palette *theme.Theme) string {
	c := m.catalog
	sample := domain.DefaultSettings()

	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(c.T("pages.settings.general.title")))
	b.WriteString("\n")
	b.WriteString(styles.CardDescription.Render(c.T("pages.settings.general.description")))
	b.WriteString("\n\n")
	for _, r := range generalRows(sample, c) {
		b.WriteString(styles.FieldLabel.Width(22).Render(r.label))
		b.WriteString(styles.FieldValue.Render(r.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Button.Render(c.T("common.actions.saveChanges")))
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render(palette.Name))
	return b.String()
}
