package gast

import "uast/internal/token"

// Literal is an atomic value. Numeric and character literals keep their
// raw source text rather than a parsed value, so no language's numeric
// model is imposed on another's.
type Literal interface {
	litNode()
	Tag() string
}

// Stable wire tags for Literal variants.
const (
	TagBoolLit      = "Bool"
	TagIntLit       = "Int"
	TagFloatLit     = "Float"
	TagCharLit      = "Char"
	TagStringLit    = "Str"
	TagRegexpLit    = "Regexp"
	TagNullLit      = "Null"
	TagUndefinedLit = "Undefined"
	TagUnitLit      = "Unit"
	TagOtherLit     = "OtherLit"
)

type BoolLit struct {
	V   bool        `json:"v"`
	Tok token.Token `json:"tok"`
}

type IntLit struct {
	Text string      `json:"text"`
	Tok  token.Token `json:"tok"`
}

type FloatLit struct {
	Text string      `json:"text"`
	Tok  token.Token `json:"tok"`
}

type CharLit struct {
	Text string      `json:"text"`
	Tok  token.Token `json:"tok"`
}

// StringLit keeps the unescaped content; the token carries the original
// spelling, quotes included.
type StringLit struct {
	Text string      `json:"text"`
	Tok  token.Token `json:"tok"`
}

type RegexpLit struct {
	Pattern Bracketed[Wrapped[string]] `json:"pattern"`
	Flags   Opt[Wrapped[string]]       `json:"flags,omitzero"`
}

type NullLit struct {
	Tok token.Token `json:"tok"`
}

type UndefinedLit struct {
	Tok token.Token `json:"tok"`
}

// UnitLit is the empty value: OCaml's (), Scala's Unit.
type UnitLit struct {
	Tok token.Token `json:"tok"`
}

// OtherLit is the catch-all for literal forms without a first-class
// variant (atoms, ratios, interpolated fragments).
type OtherLit struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (BoolLit) litNode()      {}
func (IntLit) litNode()       {}
func (FloatLit) litNode()     {}
func (CharLit) litNode()      {}
func (StringLit) litNode()    {}
func (RegexpLit) litNode()    {}
func (NullLit) litNode()      {}
func (UndefinedLit) litNode() {}
func (UnitLit) litNode()      {}
func (OtherLit) litNode()     {}

func (BoolLit) Tag() string      { return TagBoolLit }
func (IntLit) Tag() string       { return TagIntLit }
func (FloatLit) Tag() string     { return TagFloatLit }
func (CharLit) Tag() string      { return TagCharLit }
func (StringLit) Tag() string    { return TagStringLit }
func (RegexpLit) Tag() string    { return TagRegexpLit }
func (NullLit) Tag() string      { return TagNullLit }
func (UndefinedLit) Tag() string { return TagUndefinedLit }
func (UnitLit) Tag() string      { return TagUnitLit }
func (OtherLit) Tag() string     { return TagOtherLit }

func (l BoolLit) MarshalJSON() ([]byte, error) {
	type w BoolLit
	return tagged(TagBoolLit, w(l))
}

func (l IntLit) MarshalJSON() ([]byte, error) {
	type w IntLit
	return tagged(TagIntLit, w(l))
}

func (l FloatLit) MarshalJSON() ([]byte, error) {
	type w FloatLit
	return tagged(TagFloatLit, w(l))
}

func (l CharLit) MarshalJSON() ([]byte, error) {
	type w CharLit
	return tagged(TagCharLit, w(l))
}

func (l StringLit) MarshalJSON() ([]byte, error) {
	type w StringLit
	return tagged(TagStringLit, w(l))
}

func (l RegexpLit) MarshalJSON() ([]byte, error) {
	type w RegexpLit
	return tagged(TagRegexpLit, w(l))
}

func (l NullLit) MarshalJSON() ([]byte, error) {
	type w NullLit
	return tagged(TagNullLit, w(l))
}

func (l UndefinedLit) MarshalJSON() ([]byte, error) {
	type w UndefinedLit
	return tagged(TagUndefinedLit, w(l))
}

func (l UnitLit) MarshalJSON() ([]byte, error) {
	type w UnitLit
	return tagged(TagUnitLit, w(l))
}

func (l OtherLit) MarshalJSON() ([]byte, error) {
	type w OtherLit
	return tagged(TagOtherLit, w(l))
}
