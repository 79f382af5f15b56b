package gast

import (
	"strings"

	"uast/internal/token"
)

// Ident is one name occurrence in source: its text plus provenance.
type Ident struct {
	Text string      `json:"text"`
	Tok  token.Token `json:"tok"`
}

// NewIdent builds an identifier from its text and token.
func NewIdent(text string, tok token.Token) Ident {
	return Ident{Text: text, Tok: tok}
}

// DottedIdent is a qualified name normalized to dotted-identifier shape.
// Front ends fold `a.b`, `a::b`, `a->b` and backtick-quoted qualification
// into the same representation.
type DottedIdent []Ident

func (d DottedIdent) String() string {
	parts := make([]string, len(d))
	for i, id := range d {
		parts[i] = id.Text
	}
	return strings.Join(parts, ".")
}

// Last returns the final component, the entity name proper.
func (d DottedIdent) Last() (Ident, bool) {
	if len(d) == 0 {
		return Ident{}, false
	}
	return d[len(d)-1], true
}

// Name is an identifier occurrence as it appears in expressions, patterns
// and definitions: the identifier itself, an optional qualifier (the `a.b`
// in `a.b.c`), and the per-occurrence resolution slot. Info is the one
// mutable seam of the tree; it is nil until a front end or pass attaches
// a slot.
type Name struct {
	Ident     Ident            `json:"ident"`
	Qualifier Opt[DottedIdent] `json:"qualifier,omitzero"`
	Info      *IDInfo          `json:"info,omitzero"`
}

// SimpleName builds an unqualified Name with a fresh, empty resolution
// slot.
func SimpleName(id Ident) Name {
	return Name{Ident: id, Info: &IDInfo{}}
}

// QualifiedName builds a Name whose qualifier has already been normalized
// to dotted shape.
func QualifiedName(qualifier DottedIdent, id Ident) Name {
	return Name{Ident: id, Qualifier: Some(qualifier), Info: &IDInfo{}}
}

// Dotted returns the full dotted form including the qualifier.
func (n Name) Dotted() DottedIdent {
	q, ok := n.Qualifier.Get()
	if !ok {
		return DottedIdent{n.Ident}
	}
	out := make(DottedIdent, 0, len(q)+1)
	out = append(out, q...)
	out = append(out, n.Ident)
	return out
}

func (n Name) String() string {
	return n.Dotted().String()
}
