package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/framecast-cli/framecast/carousel"
)

// Display is the terminal front end. It implements carousel.Renderer by
// forwarding frames into the Bubble Tea program's message queue.
type Display struct {
	program    *tea.Program
	controller *carousel.Controller
}

// New creates a display. Attach a carousel controller before Run so the
// keyboard can drive it.
func New() *Display {
	display := &Display{}
	display.program = tea.NewProgram(newModel(display), tea.WithAltScreen())
	return display
}

// Attach wires the carousel controller the keyboard commands act on.
func (d *Display) Attach(controller *carousel.Controller) {
	d.controller = controller
}

// Run executes the display loop, blocking until quit.
func (d *Display) Run() error {
	_, err := d.program.Run()
	return err
}

// Render implements carousel.Renderer.
func (d *Display) Render(frame carousel.Frame) {
	d.program.Send(frameMsg(frame))
}

// Status shows an inline status line, used during catalog loading and retries.
func (d *Display) Status(text string) {
	d.program.Send(statusMsg(text))
}

// Quit terminates the display loop.
func (d *Display) Quit() {
	d.program.Quit()
}
