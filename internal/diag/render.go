package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed)
	noteColor    = color.New(color.FgBlue)
)

// LineSource resolves file ids back to paths and line text for context
// rendering. Renderers that cannot resolve a file fall back to bare
// positions.
type LineSource interface {
	Path(file uint32) (string, bool)
	Line(file uint32, line uint32) (string, bool)
}

// Render writes one diagnostic in the classic compiler shape:
//
//	path:line:col: SEVERITY[kind]: message
//	    source line text
//	    ^~~~~
//
// followed by its notes. Columns account for display width, so carets
// line up under tabs and wide runes.
func Render(w io.Writer, d Diagnostic, src LineSource) {
	renderHead(w, d.Severity, d.Kind.String(), d.Primary, d.Message, src)
	renderContext(w, d.Primary, caretColor, src)
	for _, n := range d.Notes {
		renderHead(w, SevInfo, "note", n.Range, n.Msg, src)
		renderContext(w, n.Range, noteColor, src)
	}
}

// RenderBag renders every diagnostic in the bag, then a one-line summary
// when the cap discarded some.
func RenderBag(w io.Writer, b *Bag, src LineSource) {
	for _, d := range b.Items() {
		Render(w, d, src)
	}
	if n := b.Dropped(); n > 0 {
		fmt.Fprintf(w, "... and %d more diagnostics\n", n)
	}
}

func renderHead(w io.Writer, sev Severity, label string, rng Range, msg string, src LineSource) {
	loc := fmt.Sprintf("%d:%d:%d", rng.File, rng.Start.Line, rng.Start.Col)
	if src != nil {
		if path, ok := src.Path(rng.File); ok {
			loc = fmt.Sprintf("%s:%d:%d", path, rng.Start.Line, rng.Start.Col)
		}
	}
	fmt.Fprintf(w, "%s: %s[%s]: %s\n", loc, severityColor(sev).Sprint(sev), label, msg)
}

func renderContext(w io.Writer, rng Range, underline *color.Color, src LineSource) {
	if src == nil {
		return
	}
	text, ok := src.Line(rng.File, rng.Start.Line)
	if !ok {
		return
	}
	fmt.Fprintf(w, "    %s\n", text)

	pad := displayWidth(text, int(rng.Start.Col))
	width := 1
	if rng.End.Line == rng.Start.Line && rng.End.Col > rng.Start.Col {
		width = displayWidth(text[min(int(rng.Start.Col), len(text)):], int(rng.End.Col-rng.Start.Col))
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline.Sprint(marker))
}

// displayWidth measures the terminal width of the first n bytes of text.
func displayWidth(text string, n int) int {
	if n > len(text) {
		n = len(text)
	}
	w := 0
	for _, r := range text[:n] {
		if r == '\t' {
			w += 8 - w%8
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
