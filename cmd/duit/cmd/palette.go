package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// palette styles CLI output. Styling is only applied when the output is a
// terminal.
type palette struct {
	color bool

	ok, fail, warn lipgloss.Style
	kind, id       lipgloss.Style
	class, prop    lipgloss.Style
	faint, title   lipgloss.Style
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newPalette(w io.Writer) *palette {
	if !isTerminal(w) {
		return &palette{}
	}
	r := lipgloss.NewRenderer(w)
	return &palette{
		color: true,
		ok:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:  r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
		kind:  r.NewStyle().Bold(true),
		id:    r.NewStyle().Foreground(lipgloss.Color("6")),
		class: r.NewStyle().Foreground(lipgloss.Color("5")),
		prop:  r.NewStyle().Foreground(lipgloss.Color("4")),
		faint: r.NewStyle().Faint(true),
		title: r.NewStyle().Bold(true).Underline(true),
	}
}

func (p *palette) paint(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}
