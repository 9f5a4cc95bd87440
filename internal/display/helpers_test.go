package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLastSaved(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		saved time.Time
		want  string
	}{
		{name: "never saved", saved: time.Time{}, want: "never"},
		{name: "seconds ago", saved: now.Add(-20 * time.Second), want: "just now"},
		{name: "minutes ago", saved: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", saved: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", saved: now.Add(-50 * time.Hour), want: "2d ago"},
		{name: "older shows date", saved: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), want: "2026-01-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLastSaved(tt.saved, now))
		})
	}
}

func TestCheckIcon(t *testing.T) {
	assert.Equal(t, "✓", CheckIcon(true))
	assert.Equal(t, "✗", CheckIcon(false))
}
