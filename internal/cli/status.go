package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mail-settings/internal/auth"
	"mail-settings/internal/config"
	"mail-settings/internal/display"
	"mail-settings/internal/repository/sqlite"
	"mail-settings/internal/theme"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where settings are read from",
	Long:  `Show the active mode, the settings service or database in use, and the current theme.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	styles := theme.NewStyles(theme.Current())
	manager := theme.Global()

	fmt.Println()
	fmt.Println(styles.Header.Render(" Mail Settings "))
	fmt.Println()

	if useLocal() {
		fmt.Printf("  %-14s %s\n", "Mode:", "local")
		fmt.Printf("  %-14s %s\n", "Database:", cfg.DBPath)

		saved, err := lastSaved()
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %s\n", "Last saved:", display.FormatLastSaved(saved, time.Now()))
	} else {
		_, err := auth.NewTokenStore().Token(cfg.ServerURL)
		hasToken := err == nil
		if err != nil && !errors.Is(err, auth.ErrNoToken) {
			logger.Warn("could not read token from keyring", "err", err)
		}

		fmt.Printf("  %-14s %s\n", "Mode:", "remote")
		fmt.Printf("  %-14s %s\n", "Server:", cfg.ServerURL)
		fmt.Printf("  %-14s %s\n", "Token:", display.CheckIcon(hasToken))
	}

	fmt.Printf("  %-14s %s %s (%s)\n", "Theme:", theme.Icon(manager.ColorTheme()), manager.ColorTheme(), manager.Resolved())
	fmt.Printf("  %-14s %s\n", "Transitions:", display.CheckIcon(theme.TransitionsSupported()))
	fmt.Printf("  %-14s %s\n", "Config:", config.GetConfigFile())
	fmt.Println()
	return nil
}

func lastSaved() (time.Time, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	return sqlite.NewSettingsRepository(db).UpdatedAt(ctx)
}
