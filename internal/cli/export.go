package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mail-settings/internal/export"
	"mail-settings/internal/service"
)

var (
	exportOutput   string
	exportFormat   string
	importFormat   string
	importStrategy string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Back up your settings",
	Long: `Write your settings to a JSON or YAML file.

Fields this version does not know about are kept.

Examples:
  mailsettings export -o settings.json
  mailsettings export --format yaml > settings.yaml`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore your settings",
	Long: `Restore settings from a file written by export.

Strategies:
  overwrite  replace the stored settings (default)
  merge      only fill settings that are empty

Examples:
  mailsettings import settings.json
  mailsettings import settings.yaml --strategy merge`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Format: json or yaml (default from the file extension)")

	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Format: json or yaml (default from the file extension)")
	importCmd.Flags().StringVar(&importStrategy, "strategy", "overwrite", "Conflict strategy: overwrite or merge")
}

func resolveFormat(flag, path string) (export.ExportFormat, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	return export.FormatFromPath(path), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat(exportFormat, exportOutput)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return withService(func(ctx context.Context, svc service.SettingsService) error {
		if err := export.NewExporter(svc).Export(ctx, w, format); err != nil {
			return err
		}
		if exportOutput != "" {
			logger.Info("settings exported", "file", exportOutput, "format", format)
		}
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := resolveFormat(importFormat, path)
	if err != nil {
		return err
	}
	strategy, err := export.ParseConflictStrategy(importStrategy)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return withService(func(ctx context.Context, svc service.SettingsService) error {
		imported, err := export.NewImporter(svc).Import(ctx, f, format, strategy)
		if err != nil {
			return err
		}
		logger.Info("settings imported", "file", path, "strategy", strategy, "colorTheme", imported.ColorTheme)
		return nil
	})
}
