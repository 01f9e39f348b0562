// Package render writes result markdown to the terminal, styled when
// stdout is a TTY and plain otherwise.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const wordWrap = 80

// warnStyle colours degradation notes so they stand apart from the
// explanation body.
var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

// Renderer turns markdown into terminal output.
type Renderer struct {
	plain    bool
	markdown *glamour.TermRenderer
}

// New creates a renderer. Styling is enabled only when stdout is a
// terminal and plain is false; otherwise markdown passes through
// untouched so output stays pipe-friendly.
func New(plain bool) *Renderer {
	r := &Renderer{plain: plain}
	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		r.plain = true
		return r
	}

	markdown, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		r.plain = true
		return r
	}

	r.markdown = markdown
	return r
}

// Markdown renders a markdown document for display. Rendering
// failures fall back to the raw markdown rather than losing output.
func (r *Renderer) Markdown(doc string) string {
	if r.plain || r.markdown == nil {
		return doc
	}

	out, err := r.markdown.Render(doc)
	if err != nil {
		return doc
	}
	return out
}

// Warnings renders a warning block, coloured on a TTY.
func (r *Renderer) Warnings(block string) string {
	if block == "" {
		return ""
	}
	if r.plain {
		return block
	}
	return warnStyle.Render(strings.TrimRight(block, "\n")) + "\n"
}
