package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const Version = "1.0"

// SettingsExport is the backup envelope. Settings is kept as a generic map
// so fields this build does not know about survive both formats.
type SettingsExport struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Settings   map[string]any `json:"settings" yaml:"settings"`
}

type ConflictStrategy string

const (
	ConflictStrategyMerge     ConflictStrategy = "merge"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(strings.ToLower(strings.TrimSpace(s))) {
	case ConflictStrategyMerge:
		return ConflictStrategyMerge, nil
	case ConflictStrategyOverwrite, "":
		return ConflictStrategyOverwrite, nil
	}
	return "", fmt.Errorf("invalid conflict strategy %q: must be overwrite or merge", s)
}

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid format %q: must be json or yaml", s)
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) ExportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}
