package theme

import (
	"github.com/charmbracelet/lipgloss"

	"mail-settings/internal/domain"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	NotFound    lipgloss.Style

	// settings card
	Card            lipgloss.Style
	CardTitle       lipgloss.Style
	CardDescription lipgloss.Style
	FieldLabel      lipgloss.Style
	FieldValue      lipgloss.Style
	Muted           lipgloss.Style

	// select control
	Option         lipgloss.Style
	SelectedOption lipgloss.Style

	// submit button
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	// toasts
	ToastPending lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	toast := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true).
			Padding(0, 1),

		NotFound: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Padding(1, 2),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)).
			Bold(true),

		CardDescription: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		FieldValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),

		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		SelectedOption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)).
			Background(lipgloss.Color(t.BgSecondary)).
			Padding(0, 2),

		ToastPending: toast.
			BorderForeground(lipgloss.Color(t.Info)).
			Foreground(lipgloss.Color(t.Info)),

		ToastSuccess: toast.
			BorderForeground(lipgloss.Color(t.Success)).
			Foreground(lipgloss.Color(t.Success)),

		ToastError: toast.
			BorderForeground(lipgloss.Color(t.Error)).
			Foreground(lipgloss.Color(t.Error)),
	}
}

// Icon is the glyph shown next to a color theme.
func Icon(c domain.ColorTheme) string {
	switch c {
	case domain.ColorThemeDark:
		return "☾"
	case domain.ColorThemeLight:
		return "☀"
	case domain.ColorThemeSystem:
		return "▣"
	default:
		return " "
	}
}
