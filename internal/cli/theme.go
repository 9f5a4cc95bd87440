package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mail-settings/internal/domain"
	"mail-settings/internal/fuzzy"
	"mail-settings/internal/service"
	"mail-settings/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
	Long: `Manage the color theme stored in your settings.

Run without arguments to pick a theme interactively.
Use subcommands for direct theme management.

Examples:
  mailsettings theme              # Pick interactively
  mailsettings theme set dark     # Set theme directly
  mailsettings theme list         # List color themes and palettes
  mailsettings theme show         # Show current theme`,
	RunE: runThemePicker,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [dark|light|system]",
	Short: "Set the color theme",
	Long: `Set the color theme and save it to your settings.

"system" follows the background of your terminal.

Examples:
  mailsettings theme set dark
  mailsettings theme set system`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light", "system"},
	RunE:      runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List color themes and palettes",
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the stored color theme, what it resolves to and its palette.`,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// parseThemeArg parses a color theme argument; the empty value is not
// selectable from the command line.
func parseThemeArg(arg string) (domain.ColorTheme, error) {
	names := make([]string, 0, 3)
	for _, c := range domain.ColorThemes() {
		names = append(names, c.String())
	}

	c, err := domain.ParseColorTheme(arg)
	if err == nil && c != domain.ColorThemeUnset {
		return c, nil
	}
	if hint := fuzzy.DidYouMean(arg, names); hint != "" {
		return "", fmt.Errorf("%w: %q, %s", domain.ErrInvalidColorTheme, arg, hint)
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidColorTheme, arg)
}

// saveColorTheme applies c to the global manager, then saves the full record
// with c merged in.
func saveColorTheme(ctx context.Context, svc service.SettingsService, c domain.ColorTheme) error {
	theme.Global().SetColorTheme(c)

	current, err := svc.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch settings: %w", err)
	}
	if err := svc.Save(ctx, current.WithColorTheme(c)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// requestContext bounds one round of service calls.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.RequestTimeout)
}

func withService(fn func(ctx context.Context, svc service.SettingsService) error) error {
	svc, closeSvc, err := openSettingsService(logger)
	if err != nil {
		return err
	}
	defer closeSvc()

	ctx, cancel := requestContext()
	defer cancel()
	return fn(ctx, svc)
}

// pickFunc asks the user for a theme, starting at current. ok is false when
// the user backs out.
type pickFunc func(current domain.ColorTheme) (choice domain.ColorTheme, ok bool, err error)

// pickAndSaveTheme loads the stored theme, lets pick take as long as the user
// needs, then saves the choice under a fresh request deadline.
func pickAndSaveTheme(svc service.SettingsService, pick pickFunc) (domain.ColorTheme, bool, error) {
	ctx, cancel := requestContext()
	current, err := svc.Fetch(ctx)
	cancel()
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch settings: %w", err)
	}

	choice := current.ColorTheme
	if choice == domain.ColorThemeUnset {
		choice = theme.Global().ColorTheme()
	}

	choice, ok, err := pick(choice)
	if err != nil || !ok {
		return "", false, err
	}

	ctx, cancel = requestContext()
	defer cancel()
	if err := saveColorTheme(ctx, svc, choice); err != nil {
		return "", false, err
	}
	return choice, true, nil
}

// huhPicker shows the interactive select
func huhPicker(current domain.ColorTheme) (domain.ColorTheme, bool, error) {
	options := make([]huh.Option[domain.ColorTheme], 0, 3)
	for _, c := range domain.ColorThemes() {
		label := theme.Icon(c) + "  " + catalog.T("common.themes."+c.String())
		options = append(options, huh.NewOption(label, c))
	}

	choice := current
	err := huh.NewSelect[domain.ColorTheme]().
		Title(catalog.T("pages.settings.appearance.theme")).
		Description(catalog.T("pages.settings.appearance.description")).
		Options(options...).
		Value(&choice).
		WithTheme(theme.HuhTheme(theme.Current())).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, err
	}
	return choice, true, nil
}

// launches the interactive picker
func runThemePicker(cmd *cobra.Command, args []string) error {
	svc, closeSvc, err := openSettingsService(logger)
	if err != nil {
		return err
	}
	defer closeSvc()

	choice, ok, err := pickAndSaveTheme(svc, huhPicker)
	if err != nil || !ok {
		return err
	}

	styles := theme.NewStyles(theme.Current())
	fmt.Println(styles.Success.Render(fmt.Sprintf("✓ %s: %s", catalog.T("common.settings.saved"), choice)))
	return nil
}

// sets the theme directly
func runThemeSet(cmd *cobra.Command, args []string) error {
	c, err := parseThemeArg(args[0])
	if err != nil {
		return err
	}

	return withService(func(ctx context.Context, svc service.SettingsService) error {
		if err := saveColorTheme(ctx, svc, c); err != nil {
			return err
		}
		fmt.Printf("✓ Theme set to '%s'\n", c)
		return nil
	})
}

// lists color themes and the palettes they can map to
func runThemeList(cmd *cobra.Command, args []string) error {
	manager := theme.Global()
	styles := theme.NewStyles(manager.Current())
	current := manager.ColorTheme()

	fmt.Println()
	fmt.Println(styles.Header.Render(" Color Themes "))
	fmt.Println()
	for _, c := range domain.ColorThemes() {
		prefix := "  "
		name := fmt.Sprintf("%s %s", theme.Icon(c), c)
		if c == current {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Printf("%s%s\n", prefix, name)
	}

	fmt.Println()
	fmt.Println(styles.Header.Render(" Palettes "))
	fmt.Println()
	for _, name := range manager.ListThemes() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	return nil
}

// displays the stored theme and its palette
func runThemeShow(cmd *cobra.Command, args []string) error {
	return withService(func(ctx context.Context, svc service.SettingsService) error {
		current, err := svc.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch settings: %w", err)
		}

		manager := theme.Global()
		palette := manager.PaletteFor(current.ColorTheme)
		styles := theme.NewStyles(palette)

		stored := current.ColorTheme.String()
		if stored == "" {
			stored = "(unset)"
		}

		fmt.Println()
		fmt.Println(styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", stored)))
		fmt.Println()
		fmt.Printf("  %-12s %s\n", "Resolves to:", manager.Resolve(current.ColorTheme))
		fmt.Printf("  %-12s %s\n", "Palette:", palette.Name)
		fmt.Println()

		colors := []struct {
			name  string
			color string
		}{
			{"Primary", palette.Primary},
			{"Success", palette.Success},
			{"Error", palette.Error},
			{"Warning", palette.Warning},
			{"Info", palette.Info},
			{"Text", palette.TextPrimary},
			{"Border", palette.BorderColor},
		}

		for _, c := range colors {
			sample := styles.Cell.
				Background(lipgloss.Color(c.color)).
				Foreground(lipgloss.Color(c.color)).
				Render("  ████  ")
			fmt.Printf("  %-12s %s %s\n", c.name+":", sample, c.color)
		}

		fmt.Println()
		return nil
	})
}
