package theme

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a form theme built from the palette.
func HuhTheme(p *Theme) *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.Color(p.Primary)
	muted := lipgloss.Color(p.TextMuted)
	fg := lipgloss.Color(p.TextPrimary)
	errColor := lipgloss.Color(p.Error)

	t.Focused.Base = t.Focused.Base.BorderForeground(lipgloss.Color(p.BorderColor))
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errColor)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(fg)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(primary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color(p.SelectedFg)).
		Background(lipgloss.Color(p.SelectedBg)).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(fg).Background(lipgloss.Color(""))
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(lipgloss.Color(p.Info))
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
