package tui

import (
	"fmt"
	"strings"

	"github.com/framecast-cli/framecast/carousel"
	"github.com/framecast-cli/framecast/catalog"
	"github.com/framecast-cli/framecast/color"
	"github.com/framecast-cli/framecast/icon"
	"github.com/framecast-cli/framecast/style"
	"github.com/framecast-cli/framecast/util"
	"github.com/muesli/reflow/wordwrap"
)

// captionWidth bounds the overview text so slides stay readable on wide terminals.
const captionWidth = 72

// View implements tea.Model.
func (m *model) View() string {
	frame, ok := m.frame.Get()
	if !ok {
		return m.viewLoading()
	}
	return m.viewSlide(frame)
}

func (m *model) viewLoading() string {
	return fmt.Sprintf(
		"\n %s %s\n\n %s",
		m.spinnerC.View(),
		m.status,
		m.helpC.View(m.keymap),
	)
}

func (m *model) viewSlide(frame carousel.Frame) string {
	var b strings.Builder

	b.WriteString("\n ")
	b.WriteString(style.Title(frame.Asset.Name))
	b.WriteString(" ")
	b.WriteString(style.Faint(layoutTag(frame.Layout)))
	if frame.Mirrored {
		b.WriteString(" ")
		b.WriteString(style.Tag(color.New("230"), color.Red)(icon.Get(icon.Play) + " LIVE"))
	}
	b.WriteString("\n\n")

	if frame.Asset.Overview != "" {
		width := util.Min(captionWidth, util.Max(m.width-2, 20))
		wrapped := wordwrap.String(frame.Asset.Overview, width)
		for _, line := range strings.Split(wrapped, "\n") {
			b.WriteString(" ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if frame.Asset.ImageURL != "" {
		b.WriteString(" ")
		b.WriteString(style.Faint(icon.Get(icon.Link) + " " + frame.Asset.ImageURL))
		b.WriteString("\n")
	}

	b.WriteString("\n ")
	b.WriteString(m.helpC.View(m.keymap))

	return b.String()
}

func layoutTag(layout catalog.Layout) string {
	switch layout {
	case catalog.LayoutAudio:
		return "[audio]"
	case catalog.LayoutPortrait:
		return "[portrait]"
	default:
		return "[landscape]"
	}
}
