// Package render prints transcript entries to a terminal, styled per origin.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/bizchat/bizchat/internal/bizchat/transcript"
)

var (
	userLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3")).
			Bold(true)

	botLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A")).
			Bold(true)

	botText = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d6dae0"))

	infoText = lipgloss.NewStyle().
			Italic(true).
			Faint(true)
)

// Renderer writes styled transcript entries to out. The newest entry is
// always the last thing written, so the terminal scrolls with the
// conversation.
type Renderer struct {
	out io.Writer
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Entry prints a single transcript entry.
func (r *Renderer) Entry(e transcript.Entry) {
	switch e.Origin {
	case transcript.OriginUser:
		fmt.Fprintf(r.out, "%s %s\n", userLabel.Render("You>"), e.Text)
	default:
		fmt.Fprintf(r.out, "%s %s\n", botLabel.Render("BizChat>"), botText.Render(e.Text))
	}
}

// Transcript prints every entry in insertion order.
func (r *Renderer) Transcript(t *transcript.Transcript) {
	for _, e := range t.Entries() {
		r.Entry(e)
	}
}

// Info prints an out-of-band notice (not part of the transcript).
func (r *Renderer) Info(text string) {
	fmt.Fprintln(r.out, infoText.Render(text))
}
