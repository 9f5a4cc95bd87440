package theme

import (
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
)

// DefaultTransitionFrames is the length of a theme cross-fade.
const DefaultTransitionFrames = 8

// Transition cross-fades between two palettes.
type Transition struct {
	from   *Theme
	to     *Theme
	frames int
}

func NewTransition(from, to *Theme, frames int) *Transition {
	if frames < 1 {
		frames = 1
	}
	return &Transition{from: from, to: to, frames: frames}
}

func (t *Transition) Frames() int {
	return t.frames
}

// Frame returns the palette at step i; Frame(Frames()) is the target.
func (t *Transition) Frame(i int) *Theme {
	if i <= 0 {
		c := *t.from
		return &c
	}
	if i >= t.frames {
		c := *t.to
		return &c
	}
	return Mix(t.from, t.to, float64(i)/float64(t.frames))
}

// Mix blends every color of a towards b in Lab space; at 0 it returns a, at 1 b.
func Mix(a, b *Theme, f float64) *Theme {
	return &Theme{
		Name:          b.Name,
		Primary:       blend(a.Primary, b.Primary, f),
		Secondary:     blend(a.Secondary, b.Secondary, f),
		Success:       blend(a.Success, b.Success, f),
		Error:         blend(a.Error, b.Error, f),
		Warning:       blend(a.Warning, b.Warning, f),
		Info:          blend(a.Info, b.Info, f),
		TextPrimary:   blend(a.TextPrimary, b.TextPrimary, f),
		TextSecondary: blend(a.TextSecondary, b.TextSecondary, f),
		TextMuted:     blend(a.TextMuted, b.TextMuted, f),
		BgPrimary:     blend(a.BgPrimary, b.BgPrimary, f),
		BgSecondary:   blend(a.BgSecondary, b.BgSecondary, f),
		BorderColor:   blend(a.BorderColor, b.BorderColor, f),
		SelectedBg:    blend(a.SelectedBg, b.SelectedBg, f),
		SelectedFg:    blend(a.SelectedFg, b.SelectedFg, f),
		HeaderBg:      blend(a.HeaderBg, b.HeaderBg, f),
		HeaderFg:      blend(a.HeaderFg, b.HeaderFg, f),
		Separator:     blend(a.Separator, b.Separator, f),
		HelpText:      blend(a.HelpText, b.HelpText, f),
		SubtitleText:  blend(a.SubtitleText, b.SubtitleText, f),
	}
}

// unparseable colors snap to the target
func blend(a, b string, f float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	if errA != nil || errB != nil {
		return b
	}
	return ca.BlendLab(cb, f).Clamped().Hex()
}

func luminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	l, _, _ := c.Lab()
	return l
}

// TransitionsSupported reports whether the terminal can show an animated
// theme change.
func TransitionsSupported() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
