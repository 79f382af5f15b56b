package token

import (
	"fmt"

	"uast/internal/source"
)

// Origin distinguishes real tokens from synthetic markers.
type Origin uint8

const (
	// OriginSource marks a token carved out of file content.
	OriginSource Origin = iota
	// OriginSynthetic marks a fabricated token with no source span.
	OriginSynthetic
)

func (o Origin) String() string {
	switch o {
	case OriginSource:
		return "source"
	case OriginSynthetic:
		return "synthetic"
	default:
		return "invalid"
	}
}

// Loc is a content-derived location: where a lexical atom sits in its file
// and the exact text it covers. Offset and Col are 0-based bytes, Line is
// 1-based.
type Loc struct {
	File   source.FileID
	Offset uint32
	Line   uint32
	Col    uint32
	Text   string
}

// Span returns the byte range covered by the location's text.
func (l Loc) Span() source.Span {
	return source.Span{
		File:  l.File,
		Start: l.Offset,
		End:   l.Offset + uint32(len(l.Text)),
	}
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d:%d %q", l.File, l.Line, l.Col, l.Text)
}

// Token is one provenance fact: either a Loc or a synthetic reason, never
// both. Use Real and Fake to construct; the zero value is a real token at
// the start of file 0 with empty text, which front ends should not emit.
type Token struct {
	Origin Origin
	Loc    Loc    // valid iff Origin == OriginSource
	Reason string // valid iff Origin == OriginSynthetic
}

// Real builds a token from a content-derived location.
func Real(loc Loc) Token {
	return Token{Origin: OriginSource, Loc: loc}
}

// Fake builds a synthetic token with a human-readable reason tag, e.g.
// "implicit-block-open" or "desugared-return".
func Fake(reason string) Token {
	return Token{Origin: OriginSynthetic, Reason: reason}
}

// IsSynthetic reports whether the token carries no source location.
func (t Token) IsSynthetic() bool {
	return t.Origin == OriginSynthetic
}

// Location returns the content-derived location, if the token has one.
func (t Token) Location() (Loc, bool) {
	if t.Origin != OriginSource {
		return Loc{}, false
	}
	return t.Loc, true
}

func (t Token) String() string {
	if t.IsSynthetic() {
		return fmt.Sprintf("fake(%s)", t.Reason)
	}
	return t.Loc.String()
}
