package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mail-settings/internal/config"
	"mail-settings/internal/domain"
	"mail-settings/internal/i18n"
	"mail-settings/internal/theme"
	"mail-settings/internal/tui"
)

var (
	verbose   bool
	cfgFile   string
	localMode bool

	logger  *log.Logger
	cfg     *config.Config
	catalog *i18n.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "mailsettings",
	Short: "Mail Settings - manage your mailbox preferences from the terminal",
	Long: `Mail Settings is a terminal client for the settings of your mailbox:
general preferences, security, notifications, labels and the color theme.

Settings are read from and written to a settings service. Use --local to
work against the local database instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(os.Stderr, nil)

		if cfgFile != "" {
			config.SetConfigFile(cfgFile)
		}

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			logger.Warn("could not load config, using defaults", "err", err)
			cfg = config.GetDefaultConfig()
		}

		catalog = i18n.MustNew(cfg.Locale)
		applyTheme()
		setupLogger(os.Stderr, theme.Current())

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkAndRunSetup(); err != nil {
			return err
		}
		displayWelcome()
		return nil
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger == nil {
			setupLogger(os.Stderr, nil)
		}
		logger.Error(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.mailsettings/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&localMode, "local", false, "Use the local database instead of the settings service")
}

// setupLogger styles log levels after the active palette when there is one.
func setupLogger(w io.Writer, palette *theme.Theme) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	styles := log.DefaultStyles()
	if palette != nil && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(lipgloss.Color(palette.TextMuted)).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(lipgloss.Color(palette.Primary)).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(lipgloss.Color(palette.Warning)).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(lipgloss.Color(palette.Error)).
			Bold(true)
	}

	if !verbose && cfg != nil {
		if l, err := log.ParseLevel(cfg.LogLevel); err == nil {
			level = l
		}
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}

// applyTheme installs the process-wide theme manager from config.
func applyTheme() {
	choice, err := domain.ParseColorTheme(cfg.ThemeName)
	if err != nil {
		logger.Warn("ignoring invalid theme_name in config", "theme_name", cfg.ThemeName)
		choice = domain.ColorThemeSystem
	}
	if choice == domain.ColorThemeUnset {
		choice = domain.ColorThemeSystem
	}

	theme.SetGlobal(theme.NewManager(
		theme.WithPalettes(cfg.DarkPalette, cfg.LightPalette),
		theme.WithColorTheme(choice),
	))
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())
}

func displayWelcome() {
	styles := theme.NewStyles(theme.Current())

	title := styles.Title.Render(`
		------------------------------------------------------

		              M A I L   S E T T I N G S

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("Your mailbox, your way")

	fmt.Println()
	fmt.Println(title)
	fmt.Println(subtitle)
	fmt.Println()
	fmt.Println("Run 'mailsettings settings' to open the settings, or 'mailsettings --help' for all commands.")
	fmt.Println()
}

// checkAndRunSetup runs the first-run wizard when no default theme is configured
func checkAndRunSetup() error {
	if cfg.ThemeName != "" || !isInteractive() {
		return nil
	}

	fmt.Println()
	fmt.Println("Welcome to Mail Settings! Let's pick your default theme.")
	fmt.Println()

	model := tui.NewSetupModel(theme.Global(), catalog, func(c domain.ColorTheme) error {
		return config.UpdateTheme(c.String())
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	setup, ok := final.(tui.SetupModel)
	if !ok || !setup.Confirmed() {
		return nil
	}
	if err := setup.Err(); err != nil {
		logger.Warn("failed to save theme", "err", err)
		return nil
	}

	cfg.ThemeName = setup.Choice().String()
	fmt.Println()
	fmt.Printf("✓ Theme configured: '%s'\n", cfg.ThemeName)
	fmt.Println()
	return nil
}
