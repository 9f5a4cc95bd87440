package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mail-settings/internal/domain"
	"mail-settings/internal/fuzzy"
	"mail-settings/internal/theme"
	"mail-settings/internal/tui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [section]",
	Short: "Open the settings screen",
	Long: `Open the interactive settings screen at a section.

Sections:
  general, connections, security, appearance,
  shortcuts, notifications, labels

Without a section the general page opens.

Keyboard shortcuts:
  tab/shift+tab   Switch section
  ↑/k ↓/j         Move
  enter           Choose
  s               Save changes
  ?               Toggle help
  q               Quit

Examples:
  mailsettings settings
  mailsettings settings appearance
  mailsettings settings appearance --local`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: domain.SectionKeys(),
	RunE:      runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

// sectionHint explains an unknown section; an empty string means the
// route is known.
func sectionHint(route string) string {
	if _, ok := tui.ResolveSection(route); ok {
		return ""
	}
	if hint := fuzzy.DidYouMean(route, domain.SectionKeys()); hint != "" {
		return fmt.Sprintf("unknown section %q, %s", route, hint)
	}
	return fmt.Sprintf("unknown section %q", route)
}

func runSettings(cmd *cobra.Command, args []string) error {
	route := ""
	if len(args) > 0 {
		route = args[0]
	}

	if err := checkAndRunSetup(); err != nil {
		return err
	}

	if hint := sectionHint(route); hint != "" {
		logger.Warn(hint)
	}

	tuiLogger, closeLog, err := openTUILogger()
	if err != nil {
		return err
	}
	defer closeLog()

	svc, closeSvc, err := openSettingsService(tuiLogger)
	if err != nil {
		return err
	}
	defer closeSvc()

	model := tui.NewSettingsModel(route, tui.Deps{
		Settings:       svc,
		Themes:         theme.Global(),
		Catalog:        catalog,
		Logger:         tuiLogger,
		Transitions:    theme.TransitionsSupported(),
		ToastDuration:  cfg.ToastDuration,
		RequestTimeout: cfg.RequestTimeout,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
