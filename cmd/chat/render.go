package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/langid"
)

var (
	youStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	aiStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	fallbackStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// renderer formats exchanges for the terminal. The zero value prints plain text.
type renderer struct {
	styled bool
	md     *glamour.TermRenderer
}

// newRenderer styles output only when stdout is a terminal and plain is not forced.
func newRenderer(plain bool) renderer {
	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return renderer{}
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w - 4
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return renderer{styled: true}
	}
	return renderer{styled: true, md: md}
}

func (r renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r renderer) markdown(text string) string {
	if r.md == nil {
		return text
	}
	out, err := r.md.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// exchange renders one completed entry.
func (r renderer) exchange(out conversation.SendOutput) string {
	var b strings.Builder

	b.WriteString(r.style(dimStyle, "Detected language: "+out.Entry.LabelDisplay))
	b.WriteString("\n")

	who := "AI"
	if out.Entry.Persona != "" {
		who += " (" + out.Entry.Persona + ")"
	}
	switch {
	case out.Failed:
		b.WriteString(r.style(errorStyle, who+":"))
		b.WriteString("\n" + out.Entry.Reply)
	case out.Fallback:
		b.WriteString(r.style(fallbackStyle, who+":"))
		b.WriteString("\n" + out.Entry.Reply)
	default:
		b.WriteString(r.style(aiStyle, who+":"))
		b.WriteString("\n" + r.markdown(out.Entry.Reply))
	}
	return b.String()
}

func (r renderer) prompt() string {
	return r.style(youStyle, "You> ")
}

func (r renderer) detection(d langid.Detection) string {
	line := d.Display + "  (" + string(d.Path)
	if d.Code != "" {
		line += ", detector said " + d.Code
	}
	line += ")"
	return r.style(dimStyle, line)
}

func (r renderer) notice(text string) string {
	return r.style(dimStyle, text)
}
