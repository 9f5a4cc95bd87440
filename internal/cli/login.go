package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"mail-settings/internal/auth"
	"mail-settings/internal/theme"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the settings service token",
	Long: `Store the bearer token for the configured settings service in the OS keyring.

Without --token you are prompted for it.

Examples:
  mailsettings login
  mailsettings login --token s3cret`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored settings service token",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVar(&loginToken, "token", "", "Token to store")
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(loginToken)

	if token == "" {
		if !isInteractive() {
			return errors.New("no token given; pass --token")
		}
		err := huh.NewInput().
			Title("Token").
			Description(fmt.Sprintf("Bearer token for %s", cfg.ServerURL)).
			EchoMode(huh.EchoModePassword).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("token is required")
				}
				return nil
			}).
			Value(&token).
			WithTheme(theme.HuhTheme(theme.Current())).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	if err := auth.NewTokenStore().Store(cfg.ServerURL, token); err != nil {
		return err
	}

	logger.Info("token stored", "server", cfg.ServerURL)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := auth.NewTokenStore().Delete(cfg.ServerURL); err != nil {
		return err
	}

	logger.Info("token removed", "server", cfg.ServerURL)
	return nil
}
