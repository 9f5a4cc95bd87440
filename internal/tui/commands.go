package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mail-settings/internal/domain"
	"mail-settings/internal/service"
)

// Message types for async operations

// settingsLoadedMsg is sent when settings are fetched
type settingsLoadedMsg struct {
	settings *domain.Settings
}

// saveResultMsg is sent when a save call returns; err is nil on success.
// toastID is the pending toast the result replaces.
type saveResultMsg struct {
	toastID string
	err     error
}

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// fetchSettingsCmd loads the settings record
func fetchSettingsCmd(svc service.SettingsService, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		settings, err := svc.Fetch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

// saveSettingsCmd sends the full record
func saveSettingsCmd(svc service.SettingsService, s *domain.Settings, timeout time.Duration, toastID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		return saveResultMsg{toastID: toastID, err: svc.Save(ctx, s)}
	}
}
