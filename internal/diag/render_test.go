package diag

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

type fakeSource struct {
	path  string
	lines []string
}

func (f fakeSource) Path(file uint32) (string, bool) {
	return f.path, true
}

func (f fakeSource) Line(file uint32, line uint32) (string, bool) {
	if line == 0 || int(line) > len(f.lines) {
		return "", false
	}
	return f.lines[line-1], true
}

func TestRenderCaret(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	src := fakeSource{path: "main.x", lines: []string{"let x = oops()"}}
	d := Diagnostic{
		Severity: SevError,
		Kind:     KindSyntax,
		Message:  "unknown function",
		Primary: Range{
			File:  1,
			Start: Pos{Offset: 8, Line: 1, Col: 8},
			End:   Pos{Offset: 12, Line: 1, Col: 12},
		},
	}

	var sb strings.Builder
	Render(&sb, d, src)
	out := sb.String()

	if !strings.Contains(out, "main.x:1:8: ERROR[syntax]: unknown function") {
		t.Errorf("missing head line:\n%s", out)
	}
	if !strings.Contains(out, "let x = oops()") {
		t.Errorf("missing context line:\n%s", out)
	}
	if !strings.Contains(out, "        ^~~~") {
		t.Errorf("caret misplaced:\n%s", out)
	}
}

func TestRenderWithoutSource(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	d := Diagnostic{
		Severity: SevWarning,
		Kind:     KindConfig,
		Message:  "jobs must be positive",
		Primary:  Range{File: 3, Start: Pos{Line: 2, Col: 1}},
	}
	var sb strings.Builder
	Render(&sb, d, nil)
	out := sb.String()
	if !strings.Contains(out, "3:2:1: WARNING[config]: jobs must be positive") {
		t.Errorf("bare render wrong:\n%s", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("context rendered without a source:\n%s", out)
	}
}

func TestRenderBagSummary(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	b := NewBag(1)
	for i := 0; i < 3; i++ {
		b.Add(Diagnostic{Severity: SevError, Kind: KindSyntax, Message: "e", Primary: rng(1, uint32(i), uint32(i)+1)})
	}
	var sb strings.Builder
	RenderBag(&sb, b, nil)
	if !strings.Contains(sb.String(), "and 2 more diagnostics") {
		t.Errorf("missing overflow summary:\n%s", sb.String())
	}
}
