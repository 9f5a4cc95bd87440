package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mail-settings/internal/rpc"
)

var (
	serveAddr  string
	serveToken string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the settings service",
	Long: `Serve settings.get and settings.save over HTTP, backed by the local database.

The bearer token can also be set with MAILSETTINGS_TOKEN. Without a token
the service accepts every caller.

Examples:
  mailsettings serve
  mailsettings serve --addr :8484 --token s3cret`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config listen_addr)")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "Bearer token clients must send")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.ListenAddr
	}
	token := serveToken
	if token == "" {
		token = os.Getenv("MAILSETTINGS_TOKEN")
	}
	if token == "" {
		logger.Warn("no token configured, the settings service is open to every caller")
	}

	svc, closeSvc, err := openLocalService(logger)
	if err != nil {
		return err
	}
	defer closeSvc()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rpc.NewServer(svc, token, logger).ListenAndServe(ctx, addr)
}
