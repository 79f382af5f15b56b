package gast

import "uast/internal/source"

// Program is the root of one source unit's tree: its top-level statements
// in source order, plus the token ranges a front end skipped during a
// partial parse. A unit with skipped ranges is still a valid tree; one
// malformed region does not discard the rest.
type Program struct {
	File    source.FileID `json:"file"`
	Stmts   []Stmt        `json:"stmts"`
	Skipped []source.Span `json:"skipped,omitempty"`
}
