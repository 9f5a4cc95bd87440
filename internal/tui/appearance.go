package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"mail-settings/internal/domain"
	"mail-settings/internal/theme"
)

const transitionFrameInterval = 30 * time.Millisecond

type formState int

const (
	stateIdle formState = iota
	stateEditing
	stateSaving
)

func (s formState) String() string {
	switch s {
	case stateEditing:
		return "editing"
	case stateSaving:
		return "saving"
	default:
		return "idle"
	}
}

type transitionFrameMsg struct {
	id int
}

// AppearanceModel edits the color theme. Picking a theme applies it at once;
// saving persists the whole settings record with the new theme merged in.
type AppearanceModel struct {
	deps    Deps
	keys    keyMap
	spinner spinner.Model

	settings *domain.Settings
	loaded   bool
	err      error

	options []domain.ColorTheme
	cursor  int
	draft   domain.ColorTheme
	state   formState

	transition      *theme.Transition
	transitionFrame int
	transitionID    int
}

func NewAppearanceModel(deps Deps) AppearanceModel {
	deps = deps.withDefaults()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return AppearanceModel{
		deps:    deps,
		keys:    defaultKeyMap(),
		spinner: s,
		options: domain.ColorThemes(),
		draft:   deps.Themes.ColorTheme(),
	}
}

// IsSaving reports whether a save is in flight.
func (m AppearanceModel) IsSaving() bool {
	return m.state == stateSaving
}

// Draft is the theme the form will submit.
func (m AppearanceModel) Draft() domain.ColorTheme {
	return m.draft
}

func (m AppearanceModel) State() string {
	return m.state.String()
}

// Transitioning reports whether a theme cross-fade is running.
func (m AppearanceModel) Transitioning() bool {
	return m.transition != nil
}

func (m AppearanceModel) palette() (*theme.Theme, bool) {
	if m.transition == nil {
		return nil, false
	}
	return m.transition.Frame(m.transitionFrame), true
}

func (m AppearanceModel) Init() tea.Cmd {
	return tea.Batch(
		fetchSettingsCmd(m.deps.Settings, m.deps.RequestTimeout),
		m.spinner.Tick,
	)
}

func (m AppearanceModel) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		first := !m.loaded
		m.settings = msg.settings
		m.loaded = true
		m.err = nil
		if first {
			m.draft = m.settings.ColorTheme
			if m.draft == domain.ColorThemeUnset {
				m.draft = m.deps.Themes.ColorTheme()
			}
			m.cursor = m.optionIndex(m.draft)
		}
		if m.state == stateSaving {
			m.state = stateIdle
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		m.deps.Logger.Error("failed to load settings", "err", msg.err)
		if m.state == stateSaving {
			m.state = stateIdle
		}
		return m, nil

	case saveResultMsg:
		// settle by refetching; the saving state clears once it returns
		return m, fetchSettingsCmd(m.deps.Settings, m.deps.RequestTimeout)

	case transitionFrameMsg:
		if m.transition == nil || msg.id != m.transitionID {
			return m, nil
		}
		m.transitionFrame++
		if m.transitionFrame >= m.transition.Frames() {
			m.transition = nil
			return m, nil
		}
		return m, m.nextFrame()

	case spinner.TickMsg:
		if m.loaded && m.state != stateSaving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppearanceModel) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if !m.themeFieldVisible() {
			return m, nil
		}
		return m.selectTheme(m.options[m.cursor])

	case key.Matches(msg, m.keys.Save):
		return m.submit()
	}
	return m, nil
}

// selectTheme applies c right away. The cross-fade only runs when it would
// change what is on screen.
func (m AppearanceModel) selectTheme(c domain.ColorTheme) (AppearanceModel, tea.Cmd) {
	themes := m.deps.Themes
	prevResolved := themes.Resolved()
	from := themes.Current()

	if m.transition != nil {
		from = m.transition.Frame(m.transitionFrame)
	}

	themes.SetColorTheme(c)
	m.draft = c
	m.cursor = m.optionIndex(c)
	if m.state == stateIdle {
		m.state = stateEditing
	}

	if !m.deps.Transitions || themes.Resolve(c) == prevResolved {
		m.transition = nil
		return m, nil
	}

	m.transitionID++
	m.transitionFrame = 0
	m.transition = theme.NewTransition(from, themes.PaletteFor(c), theme.DefaultTransitionFrames)
	return m, m.nextFrame()
}

func (m AppearanceModel) nextFrame() tea.Cmd {
	id := m.transitionID
	return tea.Tick(transitionFrameInterval, func(time.Time) tea.Msg {
		return transitionFrameMsg{id: id}
	})
}

// submit saves the loaded record with the draft theme. Nothing happens
// before the first load or while a save is running.
func (m AppearanceModel) submit() (AppearanceModel, tea.Cmd) {
	if m.settings == nil || m.state == stateSaving {
		return m, nil
	}

	m.state = stateSaving
	toastID := newToastID()

	return m, tea.Batch(
		showToast(toastID, toastPending, m.deps.Catalog.T("common.actions.saving")),
		saveSettingsCmd(m.deps.Settings, m.settings.WithColorTheme(m.draft), m.deps.RequestTimeout, toastID),
		m.spinner.Tick,
	)
}

func (m AppearanceModel) optionIndex(c domain.ColorTheme) int {
	for i, o := range m.options {
		if o == c {
			return i
		}
	}
	// unset sits on system
	for i, o := range m.options {
		if o == domain.ColorThemeSystem {
			return i
		}
	}
	return 0
}

func (m AppearanceModel) themeFieldVisible() bool {
	if m.settings == nil {
		return false
	}
	return m.settings.ColorTheme != domain.ColorThemeUnset || m.deps.Themes.ColorTheme() != domain.ColorThemeUnset
}

func (m AppearanceModel) View(styles *theme.Styles, width int) string {
	c := m.deps.Catalog

	if !m.loaded {
		if m.err != nil {
			return styles.Error.Render(m.err.Error())
		}
		return m.spinner.View() + " " + styles.Muted.Render(c.T("common.settings.loading"))
	}

	var b strings.Builder
	b.WriteString(styles.CardTitle.Render(c.T("pages.settings.appearance.title")))
	b.WriteString("\n")
	b.WriteString(styles.CardDescription.Render(c.T("pages.settings.appearance.description")))
	b.WriteString("\n\n")

	if m.themeFieldVisible() {
		b.WriteString(styles.FieldLabel.Render(c.T("pages.settings.appearance.theme")))
		b.WriteString("\n")
		for i, o := range m.options {
			label := theme.Icon(o) + "  " + c.T("common.themes."+o.String())
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			if o == m.draft {
				b.WriteString(styles.SelectedOption.Render(cursor + label))
			} else {
				b.WriteString(styles.Option.Render(cursor + label))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.state == stateSaving {
		b.WriteString(styles.ButtonDisabled.Render(m.spinner.View() + " " + c.T("common.actions.saving")))
	} else {
		b.WriteString(styles.Button.Render(c.T("common.actions.saveChanges")))
	}

	return renderCard(styles, width, b.String())
}
