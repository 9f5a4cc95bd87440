package theme

// Theme is a color palette; every field is a hex color.
type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string
	Info      string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// background
	BgPrimary   string
	BgSecondary string

	// UI element
	BorderColor  string
	SelectedBg   string
	SelectedFg   string
	HeaderBg     string
	HeaderFg     string
	Separator    string
	HelpText     string
	SubtitleText string
}

// IsDark reports whether the palette is meant for dark backgrounds.
func (t *Theme) IsDark() bool {
	return luminance(t.BgPrimary) < 0.5
}
