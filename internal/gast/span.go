package gast

import "uast/internal/source"

// Range computes the source span covered by the subtree of n: minimum
// start to maximum end over every real token, synthetic tokens ignored.
// It reports false when the subtree holds no real token at all (fully
// synthesized fragments). This is the only offset arithmetic performed on
// tokens anywhere in the tree layer.
func Range(n Any) (source.Span, bool) {
	var span source.Span
	found := false
	Walk(n, func(c Any) bool {
		tk, ok := c.(AnyTok)
		if !ok {
			return true
		}
		loc, ok := tk.T.Location()
		if !ok {
			return true
		}
		if !found {
			span = loc.Span()
			found = true
			return true
		}
		span = span.Cover(loc.Span())
		return true
	})
	return span, found
}

// ProgramRange computes the covering span of a whole source unit,
// including its skipped regions.
func ProgramRange(p *Program) (source.Span, bool) {
	var span source.Span
	found := false
	for _, st := range p.Stmts {
		if s, ok := Range(AnyStmt{st}); ok {
			if !found {
				span = s
				found = true
			} else {
				span = span.Cover(s)
			}
		}
	}
	for _, sk := range p.Skipped {
		if !found {
			span = sk
			found = true
		} else {
			span = span.Cover(sk)
		}
	}
	return span, found
}
