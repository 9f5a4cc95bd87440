package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"mail-settings/internal/domain"
	"mail-settings/internal/service"
)

var ErrUnsupportedVersion = errors.New("unsupported export version")

type Importer struct {
	settings service.SettingsService
}

func NewImporter(settings service.SettingsService) *Importer {
	return &Importer{settings: settings}
}

// Decode reads an envelope without saving anything.
func Decode(r io.Reader, format ExportFormat) (*domain.Settings, error) {
	var export SettingsExport

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&export); err != nil {
			return nil, fmt.Errorf("failed to decode settings export: %w", err)
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&export); err != nil {
			return nil, fmt.Errorf("failed to decode settings export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}

	if major, _, _ := strings.Cut(export.Version, "."); major != "1" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, export.Version)
	}
	if export.Settings == nil {
		return nil, fmt.Errorf("no settings data in export")
	}

	return fromMap(export.Settings)
}

// Import restores settings from r and returns the saved record.
func (i *Importer) Import(ctx context.Context, r io.Reader, format ExportFormat, strategy ConflictStrategy) (*domain.Settings, error) {
	incoming, err := Decode(r, format)
	if err != nil {
		return nil, err
	}

	result := incoming
	switch strategy {
	case ConflictStrategyMerge:
		stored, err := i.settings.Fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch settings: %w", err)
		}
		result = Merge(stored, incoming)
	case ConflictStrategyOverwrite, "":
	default:
		return nil, fmt.Errorf("unsupported conflict strategy %q", strategy)
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	if err := i.settings.Save(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return result, nil
}

// Merge fills the fields that are empty in stored from incoming. Booleans
// always keep the stored value.
func Merge(stored, incoming *domain.Settings) *domain.Settings {
	out := stored.Clone()
	in := incoming.Clone()

	fillString(&out.Language, in.Language)
	fillString(&out.Timezone, in.Timezone)
	fillString(&out.CustomPrompt, in.CustomPrompt)
	fillString(&out.DefaultEmailAlias, in.DefaultEmailAlias)
	fillString(&out.Notifications.Digest, in.Notifications.Digest)

	if out.ColorTheme == domain.ColorThemeUnset {
		out.ColorTheme = in.ColorTheme
	}
	if len(out.TrustedSenders) == 0 && len(in.TrustedSenders) > 0 {
		out.TrustedSenders = in.TrustedSenders
	}
	if len(out.Labels) == 0 && len(in.Labels) > 0 {
		out.Labels = in.Labels
	}

	for k, v := range in.Extra {
		if out.Extra == nil {
			out.Extra = make(map[string]json.RawMessage)
		}
		if _, ok := out.Extra[k]; !ok {
			out.Extra[k] = v
		}
	}

	return out
}

func fillString(dst *string, src string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = src
	}
}
