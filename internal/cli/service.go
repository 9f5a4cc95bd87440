package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"mail-settings/internal/auth"
	"mail-settings/internal/repository/sqlite"
	"mail-settings/internal/rpc"
	"mail-settings/internal/service"
)

// useLocal reports whether commands talk to the database directly.
func useLocal() bool {
	return localMode || cfg.Local
}

// openLocalService opens the SQLite store; the returned func closes it.
func openLocalService(l *log.Logger) (service.SettingsService, func() error, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := sqlite.NewSettingsRepository(db)
	return service.NewSettingsService(repo, l), db.Close, nil
}

// openSettingsService returns the service the commands read and write
// through: the local store with --local, the settings server otherwise.
func openSettingsService(l *log.Logger) (service.SettingsService, func() error, error) {
	if useLocal() {
		l.Debug("using local database", "path", cfg.DBPath)
		return openLocalService(l)
	}

	opts := []rpc.ClientOption{rpc.WithTimeout(cfg.RequestTimeout)}
	token, err := auth.NewTokenStore().Token(cfg.ServerURL)
	switch {
	case err == nil:
		opts = append(opts, rpc.WithToken(token))
	case errors.Is(err, auth.ErrNoToken):
		l.Debug("no token stored, calling the settings service anonymously", "server", cfg.ServerURL)
	default:
		l.Warn("could not read token from keyring", "err", err)
	}

	l.Debug("using settings service", "server", cfg.ServerURL)
	return rpc.NewClient(cfg.ServerURL, opts...), func() error { return nil }, nil
}

// openTUILogger logs to the configured file; the terminal belongs to the
// renderer while a program runs.
func openTUILogger() (*log.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           logger.GetLevel(),
	})
	return l, f.Close, nil
}
