package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// color theme stored in settings
type ColorTheme string

const (
	ColorThemeDark   ColorTheme = "dark"
	ColorThemeLight  ColorTheme = "light"
	ColorThemeSystem ColorTheme = "system"

	// unset, the client falls back to its own default
	ColorThemeUnset ColorTheme = ""
)

var ErrInvalidColorTheme = errors.New("invalid color theme: must be dark, light, or system")

// ColorThemes lists the selectable themes in the order the picker shows them.
func ColorThemes() []ColorTheme {
	return []ColorTheme{ColorThemeDark, ColorThemeSystem, ColorThemeLight}
}

func (c ColorTheme) IsValid() bool {
	switch c {
	case ColorThemeDark, ColorThemeLight, ColorThemeSystem, ColorThemeUnset:
		return true
	}
	return false
}

func (c ColorTheme) String() string {
	return string(c)
}

// ParseColorTheme accepts the three selectable themes and the empty value.
func ParseColorTheme(s string) (ColorTheme, error) {
	c := ColorTheme(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorTheme, s)
	}
	return c, nil
}

type NotificationSettings struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Sound   bool   `json:"sound" yaml:"sound"`
	Digest  string `json:"digest,omitempty" yaml:"digest,omitempty"`
}

type Label struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Settings is the user's preference record as owned by the settings service.
// Keys the client does not know about are kept in Extra and written back
// untouched on save.
type Settings struct {
	Language          string               `json:"language" yaml:"language"`
	Timezone          string               `json:"timezone" yaml:"timezone"`
	DynamicContent    bool                 `json:"dynamicContent" yaml:"dynamicContent"`
	ExternalImages    bool                 `json:"externalImages" yaml:"externalImages"`
	CustomPrompt      string               `json:"customPrompt" yaml:"customPrompt"`
	TrustedSenders    []string             `json:"trustedSenders" yaml:"trustedSenders"`
	IsOnboarded       bool                 `json:"isOnboarded" yaml:"isOnboarded"`
	ColorTheme        ColorTheme           `json:"colorTheme" yaml:"colorTheme"`
	ZeroSignature     bool                 `json:"zeroSignature" yaml:"zeroSignature"`
	DefaultEmailAlias string               `json:"defaultEmailAlias" yaml:"defaultEmailAlias"`
	Notifications     NotificationSettings `json:"notifications" yaml:"notifications"`
	Labels            []Label              `json:"labels" yaml:"labels"`

	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// DefaultSettings returns the record used before anything has been saved.
func DefaultSettings() *Settings {
	return &Settings{
		Language:       "en",
		Timezone:       "UTC",
		ExternalImages: true,
		TrustedSenders: make([]string, 0),
		ColorTheme:     ColorThemeSystem,
		ZeroSignature:  true,
		Notifications:  NotificationSettings{Enabled: true, Digest: "daily"},
		Labels:         make([]Label, 0),
	}
}

func (s *Settings) Validate() error {
	if !s.ColorTheme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColorTheme, string(s.ColorTheme))
	}

	if len(s.CustomPrompt) > 3000 {
		return errors.New("custom prompt cannot exceed 3000 characters")
	}

	for _, l := range s.Labels {
		if strings.TrimSpace(l.Name) == "" {
			return errors.New("label name cannot be empty")
		}
	}

	return nil
}

// Clone returns a deep copy, so drafts never alias the loaded record.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}

	c := *s
	if s.TrustedSenders != nil {
		c.TrustedSenders = make([]string, len(s.TrustedSenders))
		copy(c.TrustedSenders, s.TrustedSenders)
	}
	if s.Labels != nil {
		c.Labels = make([]Label, len(s.Labels))
		copy(c.Labels, s.Labels)
	}
	if s.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return &c
}

// WithColorTheme returns a copy of the full record with only the color theme
// replaced.
func (s *Settings) WithColorTheme(theme ColorTheme) *Settings {
	c := s.Clone()
	c.ColorTheme = theme
	return c
}

// settingsFields is an alias without the custom (un)marshalers
type settingsFields Settings

func (s Settings) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(settingsFields(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(s.Extra)+16)
	for k, v := range s.Extra {
		merged[k] = v
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}

	return json.Marshal(merged)
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	var fields settingsFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for _, k := range knownSettingsKeys {
		delete(raw, k)
	}

	*s = Settings(fields)
	if len(raw) > 0 {
		s.Extra = raw
	}
	return nil
}

var knownSettingsKeys = []string{
	"language",
	"timezone",
	"dynamicContent",
	"externalImages",
	"customPrompt",
	"trustedSenders",
	"isOnboarded",
	"colorTheme",
	"zeroSignature",
	"defaultEmailAlias",
	"notifications",
	"labels",
}
