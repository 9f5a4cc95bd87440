package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"mail-settings/internal/domain"
	"mail-settings/internal/service"
)

type Exporter struct {
	settings service.SettingsService
	now      func() time.Time
}

func NewExporter(settings service.SettingsService) *Exporter {
	return &Exporter{
		settings: settings,
		now:      time.Now,
	}
}

// Build fetches the current record and wraps it in an envelope.
func (e *Exporter) Build(ctx context.Context) (*SettingsExport, error) {
	s, err := e.settings.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}

	fields, err := toMap(s)
	if err != nil {
		return nil, err
	}

	return &SettingsExport{
		Version:    Version,
		ExportedAt: e.now().UTC().Truncate(time.Second),
		Settings:   fields,
	}, nil
}

func (e *Exporter) Export(ctx context.Context, w io.Writer, format ExportFormat) error {
	export, err := e.Build(ctx)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(export); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(export)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// toMap goes through the settings JSON form so passthrough fields are kept.
func toMap(s *domain.Settings) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return fields, nil
}

func fromMap(fields map[string]any) (*domain.Settings, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	var s domain.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}
