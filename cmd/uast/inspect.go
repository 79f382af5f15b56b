package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"uast/internal/gast"
)

var (
	inspectFormat string
	inspectDepth  int
	inspectTokens bool
)

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "pretty", "output format (pretty|json)")
	inspectCmd.Flags().IntVar(&inspectDepth, "depth", 0, "limit outline depth (0 = unlimited)")
	inspectCmd.Flags().BoolVar(&inspectTokens, "tokens", false, "include tokens in the outline")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] file...",
	Short: "Print an outline of serialized trees",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

var (
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	tagStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	catchAllStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)
	tokenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runInspect(cmd *cobra.Command, args []string) error {
	dc := openCache()
	out := cmd.OutOrStdout()

	for _, path := range args {
		p, err := loadTree(path, dc)
		if err != nil {
			return err
		}
		switch inspectFormat {
		case "pretty":
			fmt.Fprintln(out, fileStyle.Render(path))
			for _, s := range p.Stmts {
				outline(out, gast.AnyStmt{S: s}, 1)
			}
		case "json":
			if err := writeSummary(out, path, p); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", inspectFormat)
		}
	}
	return nil
}

// outline prints one node and recurses, labeling nodes with whatever
// short text identifies them: identifier text, literal text, or the
// catch-all construct label.
func outline(w io.Writer, n gast.Any, depth int) {
	if inspectDepth > 0 && depth > inspectDepth {
		return
	}
	if tk, ok := n.(gast.AnyTok); ok {
		if !inspectTokens {
			return
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), tokenStyle.Render(tk.T.String()))
		return
	}

	line := tagStyle.Render(nodeTag(n))
	if label := nodeLabel(n); label != "" {
		line += " " + labelStyle.Render(label)
	}
	if todo := catchAllLabel(n); todo != "" {
		line += " " + catchAllStyle.Render("?"+todo)
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), line)

	for _, c := range gast.Children(n) {
		outline(w, c, depth+1)
	}
}

// nodeTag names the wrapped node, not the wrapper.
func nodeTag(n gast.Any) string {
	switch v := n.(type) {
	case gast.AnyExpr:
		return v.X.Tag()
	case gast.AnyStmt:
		return v.S.Tag()
	case gast.AnyPat:
		return v.P.Tag()
	case gast.AnyType:
		return v.T.Tag()
	case gast.AnyDef:
		return v.D.Kind.Tag()
	case gast.AnyDir:
		return v.D.Tag()
	case gast.AnyAttr:
		return v.A.Tag()
	case gast.AnyArg:
		return v.A.Tag()
	case gast.AnyParam:
		return v.P.Tag()
	case gast.AnyName:
		return "Name"
	case gast.AnyIdent:
		return "Ident"
	default:
		return n.Tag()
	}
}

func nodeLabel(n gast.Any) string {
	switch v := n.(type) {
	case gast.AnyName:
		return v.N.String()
	case gast.AnyIdent:
		return v.I.Text
	case gast.AnyDef:
		return v.D.Entity.Name.String()
	case gast.AnyExpr:
		if lit, ok := v.X.(gast.Lit); ok {
			return litText(lit.Value)
		}
	}
	return ""
}

func litText(l gast.Literal) string {
	switch v := l.(type) {
	case gast.BoolLit:
		if v.V {
			return "true"
		}
		return "false"
	case gast.IntLit:
		return v.Text
	case gast.FloatLit:
		return v.Text
	case gast.CharLit:
		return v.Text
	case gast.StringLit:
		return v.Text
	}
	return ""
}

func catchAllLabel(n gast.Any) string {
	switch v := n.(type) {
	case gast.AnyExpr:
		if o, ok := v.X.(gast.OtherExpr); ok {
			return o.Todo
		}
	case gast.AnyStmt:
		if o, ok := v.S.(gast.OtherStmt); ok {
			return o.Todo
		}
	case gast.AnyPat:
		if o, ok := v.P.(gast.OtherPat); ok {
			return o.Todo
		}
	case gast.AnyType:
		if o, ok := v.T.(gast.OtherType); ok {
			return o.Todo
		}
	case gast.AnyDir:
		if o, ok := v.D.(gast.OtherDirective); ok {
			return o.Todo
		}
	}
	return ""
}

type treeSummary struct {
	Path       string         `json:"path"`
	File       uint32         `json:"file"`
	Statements int            `json:"statements"`
	Nodes      int            `json:"nodes"`
	Tokens     int            `json:"tokens"`
	Synthetic  int            `json:"synthetic_tokens"`
	Skipped    int            `json:"skipped_ranges"`
	Tags       map[string]int `json:"tags"`
}

func writeSummary(w io.Writer, path string, p *gast.Program) error {
	s := treeSummary{
		Path:       path,
		File:       uint32(p.File),
		Statements: len(p.Stmts),
		Skipped:    len(p.Skipped),
		Tags:       map[string]int{},
	}
	for _, st := range p.Stmts {
		gast.Walk(gast.AnyStmt{S: st}, func(n gast.Any) bool {
			if tk, ok := n.(gast.AnyTok); ok {
				s.Tokens++
				if tk.T.IsSynthetic() {
					s.Synthetic++
				}
				return true
			}
			s.Nodes++
			s.Tags[nodeTag(n)]++
			return true
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
