package display

import (
	"fmt"
	"time"
)

// CheckIcon marks a yes/no status line
func CheckIcon(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

// FormatLastSaved describes when the settings were last written relative to now.
func FormatLastSaved(saved, now time.Time) string {
	if saved.IsZero() {
		return "never"
	}

	diff := now.Sub(saved)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff <= 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}

	return saved.Format("2006-01-02")
}
