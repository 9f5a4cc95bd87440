package tui

import (
	"mail-settings/internal/theme"
)

const minCardWidth = 40

// renderCard frames a section body, leaving room for the border
func renderCard(styles *theme.Styles, width int, body string) string {
	w := width - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	return styles.Card.Width(w).Render(body)
}
