// Package testkit checks structural invariants of generic trees. Tests
// and the validate command share it, so a front-end bug surfaces the same
// way in both.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"uast/internal/diag"
	"uast/internal/gast"
	"uast/internal/source"
	"uast/internal/token"
)

// CheckTree verifies the tree invariants of one program against its file
// and reports every violation. It returns the number of violations.
//
// Checked invariants:
//  1. every real token's span lies inside the file content and names the
//     program's file;
//  2. tokens are strictly real or synthetic, never a mix of both payloads;
//  3. every catch-all node carries a non-empty construct label;
//  4. skipped ranges lie inside the file content.
//
// A nil file skips the content-bounds checks; trees often travel without
// their source.
func CheckTree(p *gast.Program, sf *source.File, r diag.Reporter) int {
	if p == nil {
		report(r, diag.Range{}, "nil program")
		return 1
	}
	contentLen := uint32(^uint32(0))
	if sf != nil {
		var err error
		contentLen, err = safecast.Conv[uint32](len(sf.Content))
		if err != nil {
			report(r, diag.Range{}, fmt.Sprintf("content length overflow: %v", err))
			return 1
		}
	}

	violations := 0
	for _, s := range p.Stmts {
		gast.Walk(gast.AnyStmt{S: s}, func(n gast.Any) bool {
			if tk, ok := n.(gast.AnyTok); ok {
				violations += checkToken(tk.T, p.File, contentLen, r)
			}
			violations += checkCatchAll(n, r)
			return true
		})
	}
	for _, sp := range p.Skipped {
		if sp.File != p.File {
			report(r, diag.Range{File: uint32(p.File)}, fmt.Sprintf("skipped range names file %d, tree is for file %d", sp.File, p.File))
			violations++
		}
		if sp.End > contentLen {
			report(r, diag.Range{File: uint32(sp.File)}, fmt.Sprintf("skipped range [%d,%d) ends beyond content length %d", sp.Start, sp.End, contentLen))
			violations++
		}
	}
	return violations
}

func checkToken(t token.Token, file source.FileID, contentLen uint32, r diag.Reporter) int {
	if t.IsSynthetic() {
		if t.Loc != (token.Loc{}) {
			report(r, diag.Range{File: uint32(file)}, fmt.Sprintf("synthetic token %q carries a location", t.Reason))
			return 1
		}
		if t.Reason == "" {
			report(r, diag.Range{File: uint32(file)}, "synthetic token without a reason")
			return 1
		}
		return 0
	}

	violations := 0
	if t.Reason != "" {
		report(r, locRange(t.Loc), fmt.Sprintf("real token %q carries a synthetic reason", t.Loc.Text))
		violations++
	}
	if t.Loc.File != file {
		report(r, locRange(t.Loc), fmt.Sprintf("token names file %d, tree is for file %d", t.Loc.File, file))
		violations++
	}
	if sp := t.Loc.Span(); sp.End > contentLen {
		report(r, locRange(t.Loc), fmt.Sprintf("token span [%d,%d) ends beyond content length %d", sp.Start, sp.End, contentLen))
		violations++
	}
	if t.Loc.Line == 0 {
		report(r, locRange(t.Loc), "token line is 0, lines are 1-based")
		violations++
	}
	return violations
}

// checkCatchAll flags escape-hatch nodes whose construct label is empty;
// a catch-all without a label is unrecoverable downstream.
func checkCatchAll(n gast.Any, r diag.Reporter) int {
	todo := ""
	tagged := false
	switch v := n.(type) {
	case gast.AnyExpr:
		if o, ok := v.X.(gast.OtherExpr); ok {
			todo, tagged = o.Todo, true
		}
	case gast.AnyStmt:
		if o, ok := v.S.(gast.OtherStmt); ok {
			todo, tagged = o.Todo, true
		}
	case gast.AnyPat:
		if o, ok := v.P.(gast.OtherPat); ok {
			todo, tagged = o.Todo, true
		}
	case gast.AnyType:
		if o, ok := v.T.(gast.OtherType); ok {
			todo, tagged = o.Todo, true
		}
	case gast.AnyDef:
		if o, ok := v.D.Kind.(gast.OtherDef); ok {
			todo, tagged = o.Todo, true
		}
	case gast.AnyDir:
		if o, ok := v.D.(gast.OtherDirective); ok {
			todo, tagged = o.Todo, true
		}
	}
	if tagged && todo == "" {
		rng := diag.Range{}
		if sp, ok := gast.Range(n); ok {
			rng = spanRange(sp)
		}
		report(r, rng, "catch-all node without a construct label")
		return 1
	}
	return 0
}

func report(r diag.Reporter, rng diag.Range, msg string) {
	if r == nil {
		return
	}
	diag.ReportError(r, diag.KindInternal, rng, msg).Emit()
}

func locRange(l token.Loc) diag.Range {
	end, err := safecast.Conv[uint32](len(l.Text))
	if err != nil {
		end = 0
	}
	return diag.Range{
		File:  uint32(l.File),
		Start: diag.Pos{Offset: l.Offset, Line: l.Line, Col: l.Col},
		End:   diag.Pos{Offset: l.Offset + end, Line: l.Line, Col: l.Col + end},
	}
}

func spanRange(sp source.Span) diag.Range {
	return diag.Range{
		File:  uint32(sp.File),
		Start: diag.Pos{Offset: sp.Start},
		End:   diag.Pos{Offset: sp.End},
	}
}
