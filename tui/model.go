package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/framecast-cli/framecast/carousel"
	"github.com/samber/mo"
)

type (
	frameMsg  carousel.Frame
	statusMsg string
)

// model is the display's Bubble Tea state: a spinner while the catalog
// loads, then the current slide.
type model struct {
	display *Display
	keymap  keymap

	spinnerC spinner.Model
	helpC    help.Model

	frame  mo.Option[carousel.Frame]
	status string

	width, height int
}

func newModel(display *Display) *model {
	spinnerC := spinner.New()
	spinnerC.Spinner = spinner.Dot

	return &model{
		display:  display,
		keymap:   newKeymap(),
		spinnerC: spinnerC,
		helpC:    help.New(),
		status:   "Connecting",
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return m.spinnerC.Tick
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.helpC.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = mo.Some(carousel.Frame(msg))
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinnerC, cmd = m.spinnerC.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controller := m.display.controller

	switch {
	case key.Matches(msg, m.keymap.quit), key.Matches(msg, m.keymap.forceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.playPause):
		if controller == nil || m.mirrored() {
			return m, nil
		}
		if controller.AutoplayRunning() {
			controller.PauseAutoplay()
		} else {
			controller.ResumeAutoplay()
		}
		return m, nil

	case key.Matches(msg, m.keymap.next):
		if controller == nil || m.mirrored() {
			return m, nil
		}
		return m, func() tea.Msg {
			controller.Advance()
			return nil
		}
	}

	return m, nil
}

// mirrored reports whether the visible frame belongs to a live remote session.
func (m *model) mirrored() bool {
	frame, ok := m.frame.Get()
	return ok && frame.Mirrored
}
