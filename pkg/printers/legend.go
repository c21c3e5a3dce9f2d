package printers

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/timeline/pkg/category"
)

var (
	rendererMu sync.Mutex
	renderer   = NewRenderer(os.Stdout)
)

// NewRenderer returns a lipgloss renderer for w. Anything that is not a
// terminal gets the ASCII profile so piped output carries no escape codes.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// SetRenderer replaces the renderer used for swatches.
func SetRenderer(r *lipgloss.Renderer) {
	rendererMu.Lock()
	renderer = r
	rendererMu.Unlock()
}

func currentRenderer() *lipgloss.Renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	return renderer
}

// IsTerminal reports whether w is a tty.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Swatch renders a small block in the category color. Without color support
// it falls back to a bracketed initial.
func Swatch(c category.Category) string {
	r := currentRenderer()
	meta := category.Lookup(c)
	if r.ColorProfile() == termenv.Ascii {
		return "[" + string(meta.Label[0]) + "]"
	}
	return r.NewStyle().
		Background(lipgloss.Color(meta.Color)).
		Foreground(lipgloss.Color(category.Contrast(c))).
		Render(" " + string(meta.Label[0]) + " ")
}

// Legend prints the category palette.
func (pp *PrettyPrint) Legend(palette []category.Meta, active category.Set) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Category"), bold.Sprint("Color"), bold.Sprint("Shown"))
	for _, m := range palette {
		shown := "yes"
		if len(active) > 0 && !active.Has(m.Key) {
			shown = faint.Sprint("no")
		}
		tbl.AddRow(Swatch(m.Key), m.Label, m.Color, shown)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
