package theme

// palette names; "dark" and "light" are what the dark and light color themes
// resolve to unless configured otherwise
const (
	PaletteDark    = "dark"
	PaletteLight   = "light"
	PaletteDracula = "dracula"
	PaletteNord    = "nord"
	PaletteGruvbox = "gruvbox"
	PalettePaper   = "paper"
)

func GetPredefinedThemes() map[string]*Theme {
	themes := make(map[string]*Theme)
	for _, t := range []*Theme{
		DarkTheme(),
		LightTheme(),
		DraculaTheme(),
		NordTheme(),
		GruvboxTheme(),
		PaperTheme(),
	} {
		themes[t.Name] = t
	}
	return themes
}

func GetThemeNames() []string {
	return []string{
		PaletteDark,
		PaletteLight,
		PaletteDracula,
		PaletteNord,
		PaletteGruvbox,
		PalettePaper,
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: PaletteDark,

		// semantic
		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",
		Info:      "#7DCFFF",

		// text
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		// background
		BgPrimary:   "#1A1B26",
		BgSecondary: "#24283B",

		// UI element
		BorderColor:  "#BB9AF7",
		SelectedBg:   "#BB9AF7",
		SelectedFg:   "#1A1B26",
		HeaderBg:     "#BB9AF7",
		HeaderFg:     "#1A1B26",
		Separator:    "#3B4261",
		HelpText:     "#565F89",
		SubtitleText: "#565F89",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: PaletteLight,

		// semantic
		Primary:   "#5B3CC4",
		Secondary: "#2563EB",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",
		Info:      "#0284C7",

		// text
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",

		// background
		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F3F4F6",

		// UI element
		BorderColor:  "#5B3CC4",
		SelectedBg:   "#5B3CC4",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#5B3CC4",
		HeaderFg:     "#FFFFFF",
		Separator:    "#D1D5DB",
		HelpText:     "#6B7280",
		SubtitleText: "#9CA3AF",
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name: PaletteDracula,

		// semantic
		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#FFB86C",
		Info:      "#8BE9FD",

		// text
		TextPrimary:   "#F8F8F2",
		TextSecondary: "#BFBFBF",
		TextMuted:     "#6272A4",

		// background
		BgPrimary:   "#282A36",
		BgSecondary: "#44475A",

		// UI element
		BorderColor:  "#BD93F9",
		SelectedBg:   "#BD93F9",
		SelectedFg:   "#282A36",
		HeaderBg:     "#BD93F9",
		HeaderFg:     "#282A36",
		Separator:    "#44475A",
		HelpText:     "#6272A4",
		SubtitleText: "#6272A4",
	}
}

func NordTheme() *Theme {
	return &Theme{
		Name: PaletteNord,

		// semantic
		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Success:   "#A3BE8C",
		Error:     "#BF616A",
		Warning:   "#EBCB8B",
		Info:      "#5E81AC",

		// text
		TextPrimary:   "#ECEFF4",
		TextSecondary: "#D8DEE9",
		TextMuted:     "#4C566A",

		// background
		BgPrimary:   "#2E3440",
		BgSecondary: "#3B4252",

		// UI element
		BorderColor:  "#88C0D0",
		SelectedBg:   "#88C0D0",
		SelectedFg:   "#2E3440",
		HeaderBg:     "#5E81AC",
		HeaderFg:     "#ECEFF4",
		Separator:    "#434C5E",
		HelpText:     "#4C566A",
		SubtitleText: "#616E88",
	}
}

func GruvboxTheme() *Theme {
	return &Theme{
		Name: PaletteGruvbox,

		// semantic
		Primary:   "#FE8019",
		Secondary: "#83A598",
		Success:   "#B8BB26",
		Error:     "#FB4934",
		Warning:   "#FABD2F",
		Info:      "#83A598",

		// text
		TextPrimary:   "#EBDBB2",
		TextSecondary: "#D5C4A1",
		TextMuted:     "#928374",

		// background
		BgPrimary:   "#282828",
		BgSecondary: "#3C3836",

		// UI element
		BorderColor:  "#FE8019",
		SelectedBg:   "#FE8019",
		SelectedFg:   "#282828",
		HeaderBg:     "#D65D0E",
		HeaderFg:     "#FBF1C7",
		Separator:    "#504945",
		HelpText:     "#928374",
		SubtitleText: "#A89984",
	}
}

func PaperTheme() *Theme {
	return &Theme{
		Name: PalettePaper,

		// semantic
		Primary:   "#268BD2",
		Secondary: "#2AA198",
		Success:   "#859900",
		Error:     "#DC322F",
		Warning:   "#B58900",
		Info:      "#268BD2",

		// text
		TextPrimary:   "#073642",
		TextSecondary: "#586E75",
		TextMuted:     "#93A1A1",

		// background
		BgPrimary:   "#FDF6E3",
		BgSecondary: "#EEE8D5",

		// UI element
		BorderColor:  "#268BD2",
		SelectedBg:   "#268BD2",
		SelectedFg:   "#FDF6E3",
		HeaderBg:     "#268BD2",
		HeaderFg:     "#FDF6E3",
		Separator:    "#EEE8D5",
		HelpText:     "#93A1A1",
		SubtitleText: "#93A1A1",
	}
}
