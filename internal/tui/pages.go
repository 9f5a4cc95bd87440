package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mail-settings/internal/domain"
	"mail-settings/internal/i18n"
	"mail-settings/internal/theme"
)

type row struct {
	label string
	value string
}

// rowsFunc turns the settings record into the lines a section shows
type rowsFunc func(s *domain.Settings, c *i18n.Catalog) []row

func onOff(c *i18n.Catalog, v bool) string {
	if v {
		return c.T("pages.settings.fields.enabled")
	}
	return c.T("pages.settings.fields.disabled")
}

func orNone(c *i18n.Catalog, v string) string {
	if strings.TrimSpace(v) == "" {
		return c.T("pages.settings.fields.none")
	}
	return v
}

func generalRows(s *domain.Settings, c *i18n.Catalog) []row {
	return []row{
		{c.T("pages.settings.fields.language"), s.Language},
		{c.T("pages.settings.fields.timezone"), s.Timezone},
		{c.T("pages.settings.fields.dynamicContent"), onOff(c, s.DynamicContent)},
		{c.T("pages.settings.fields.zeroSignature"), onOff(c, s.ZeroSignature)},
		{c.T("pages.settings.fields.customPrompt"), orNone(c, truncate(s.CustomPrompt, 60))},
	}
}

func connectionRows(s *domain.Settings, c *i18n.Catalog) []row {
	return []row{
		{c.T("pages.settings.fields.defaultEmailAlias"), orNone(c, s.DefaultEmailAlias)},
	}
}

func securityRows(s *domain.Settings, c *i18n.Catalog) []row {
	return []row{
		{c.T("pages.settings.fields.externalImages"), onOff(c, s.ExternalImages)},
		{c.T("pages.settings.fields.trustedSenders"), orNone(c, strings.Join(s.TrustedSenders, ", "))},
	}
}

func notificationRows(s *domain.Settings, c *i18n.Catalog) []row {
	return []row{
		{c.T("pages.settings.fields.notificationsEnabled"), onOff(c, s.Notifications.Enabled)},
		{c.T("pages.settings.fields.notificationSound"), onOff(c, s.Notifications.Sound)},
		{c.T("pages.settings.fields.digest"), orNone(c, s.Notifications.Digest)},
	}
}

func labelRows(s *domain.Settings, c *i18n.Catalog) []row {
	if len(s.Labels) == 0 {
		return []row{{"", c.T("pages.settings.fields.none")}}
	}
	rows := make([]row, 0, len(s.Labels))
	for _, l := range s.Labels {
		swatch := "■"
		if l.Color != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render("■")
		}
		rows = append(rows, row{label: l.Name, value: swatch})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// summaryPage shows part of the settings record read-only
type summaryPage struct {
	section domain.Section
	deps    Deps
	rows    rowsFunc
	spinner spinner.Model

	settings *domain.Settings
	err      error
}

func newSummaryPage(section domain.Section, deps Deps, rows rowsFunc) summaryPage {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return summaryPage{section: section, deps: deps.withDefaults(), rows: rows, spinner: s}
}

func (p summaryPage) Init() tea.Cmd {
	return tea.Batch(fetchSettingsCmd(p.deps.Settings, p.deps.RequestTimeout), p.spinner.Tick)
}

func (p summaryPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		p.settings = msg.settings
		p.err = nil
	case errMsg:
		p.err = msg.err
		p.deps.Logger.Error("failed to load settings", "section", p.section.Key(), "err", msg.err)
	case spinner.TickMsg:
		if p.settings != nil || p.err != nil {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p summaryPage) View(styles *theme.Styles, width int) string {
	c := p.deps.Catalog
	prefix := "pages.settings." + p.section.Key()

	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(c.T(prefix + ".title")))
	b.WriteString("\n")
	b.WriteString(styles.CardDescription.Render(c.T(prefix + ".description")))
	b.WriteString("\n\n")

	switch {
	case p.err != nil:
		b.WriteString(styles.Error.Render(p.err.Error()))
	case p.settings == nil:
		b.WriteString(p.spinner.View() + " " + styles.Muted.Render(c.T("common.settings.loading")))
	default:
		rows := p.rows(p.settings, c)
		labelWidth := 0
		for _, r := range rows {
			labelWidth = max(labelWidth, lipgloss.Width(r.label))
		}
		for i, r := range rows {
			if i > 0 {
				b.WriteString("\n")
			}
			label := styles.FieldLabel.Width(labelWidth + 2).Render(r.label)
			b.WriteString(label + styles.FieldValue.Render(r.value))
		}
	}

	return renderCard(styles, width, b.String())
}

// shortcutsPage lists the key bindings
type shortcutsPage struct {
	deps Deps
	keys keyMap
	help help.Model
}

func newShortcutsPage(deps Deps) shortcutsPage {
	h := help.New()
	h.ShowAll = true
	return shortcutsPage{deps: deps.withDefaults(), keys: defaultKeyMap(), help: h}
}

func (p shortcutsPage) Init() tea.Cmd {
	return nil
}

func (p shortcutsPage) Update(msg tea.Msg) (page, tea.Cmd) {
	return p, nil
}

func (p shortcutsPage) View(styles *theme.Styles, width int) string {
	c := p.deps.Catalog

	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(c.T("pages.settings.shortcuts.title")))
	b.WriteString("\n")
	b.WriteString(styles.CardDescription.Render(c.T("pages.settings.shortcuts.description")))
	b.WriteString("\n\n")

	for _, group := range p.keys.FullHelp() {
		for _, k := range group {
			h := k.Help()
			b.WriteString(fmt.Sprintf("%s %s\n",
				styles.FieldLabel.Width(12).Render(h.Key),
				styles.FieldValue.Render(h.Desc)))
		}
	}
	b.WriteString("\n")
	p.help.Width = width
	b.WriteString(styles.Muted.Render(p.help.ShortHelpView(p.keys.ShortHelp())))

	return renderCard(styles, width, b.String())
}
