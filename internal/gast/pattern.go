package gast

import "uast/internal/token"

// Pattern is the destructuring/matching hierarchy. It deliberately
// mirrors expression shapes: many languages reuse one grammar for both,
// and identifier patterns carry the same IDInfo slot as expression
// occurrences so binding resolution treats them uniformly.
type Pattern interface {
	patNode()
	Tag() string
}

// Stable wire tags for Pattern variants.
const (
	TagPatLit         = "PatLit"
	TagPatID          = "PatId"
	TagPatWildcard    = "PatWildcard"
	TagPatConstructor = "PatConstructor"
	TagPatTuple       = "PatTuple"
	TagPatList        = "PatList"
	TagPatRecord      = "PatRecord"
	TagPatTyped       = "PatTyped"
	TagPatOr          = "PatOr"
	TagPatAs          = "PatAs"
	TagPatExpr        = "PatExpr"
	TagOtherPat       = "OtherPat"
)

// PatLit matches a literal value exactly.
type PatLit struct {
	Value Literal `json:"value"`
}

// PatID binds a name. Info is the same resolution slot expressions carry.
type PatID struct {
	Ident Ident   `json:"ident"`
	Info  *IDInfo `json:"info,omitzero"`
}

// PatWildcard matches anything without binding: _.
type PatWildcard struct {
	Tok token.Token `json:"tok"`
}

// PatConstructor destructures a data constructor application.
type PatConstructor struct {
	Name Name      `json:"name"`
	Args []Pattern `json:"args"`
}

type PatTuple struct {
	Elems Bracketed[[]Pattern] `json:"elems"`
}

// PatList destructures a sequence, with an optional rest binding for
// [head, ...tail] shapes.
type PatList struct {
	Elems Bracketed[[]Pattern] `json:"elems"`
	Rest  Opt[Pattern]         `json:"rest,omitzero"`
}

// PatField matches one field of a record pattern.
type PatField struct {
	Name DottedIdent `json:"name"`
	Pat  Pattern     `json:"pat"`
}

type PatRecord struct {
	Fields Bracketed[[]PatField] `json:"fields"`
}

// PatTyped constrains a pattern with a type annotation.
type PatTyped struct {
	Pat Pattern  `json:"pat"`
	Ty  TypeExpr `json:"ty"`
}

// PatOr matches if any alternative matches.
type PatOr struct {
	Alts []Pattern `json:"alts"`
}

// PatAs binds the whole matched value while destructuring it: p as x.
type PatAs struct {
	Pat   Pattern `json:"pat"`
	Ident Ident   `json:"ident"`
	Info  *IDInfo `json:"info,omitzero"`
}

// PatExpr bridges into the expression grammar for languages whose
// patterns are ordinary expressions (JS destructuring targets).
type PatExpr struct {
	X Expr `json:"x"`
}

// OtherPat is the pattern escape hatch.
type OtherPat struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (PatLit) patNode()         {}
func (PatID) patNode()          {}
func (PatWildcard) patNode()    {}
func (PatConstructor) patNode() {}
func (PatTuple) patNode()       {}
func (PatList) patNode()        {}
func (PatRecord) patNode()      {}
func (PatTyped) patNode()       {}
func (PatOr) patNode()          {}
func (PatAs) patNode()          {}
func (PatExpr) patNode()        {}
func (OtherPat) patNode()       {}

func (PatLit) Tag() string         { return TagPatLit }
func (PatID) Tag() string          { return TagPatID }
func (PatWildcard) Tag() string    { return TagPatWildcard }
func (PatConstructor) Tag() string { return TagPatConstructor }
func (PatTuple) Tag() string       { return TagPatTuple }
func (PatList) Tag() string        { return TagPatList }
func (PatRecord) Tag() string      { return TagPatRecord }
func (PatTyped) Tag() string       { return TagPatTyped }
func (PatOr) Tag() string          { return TagPatOr }
func (PatAs) Tag() string          { return TagPatAs }
func (PatExpr) Tag() string        { return TagPatExpr }
func (OtherPat) Tag() string       { return TagOtherPat }

func (p PatLit) MarshalJSON() ([]byte, error) {
	type w PatLit
	return tagged(TagPatLit, w(p))
}

func (p PatID) MarshalJSON() ([]byte, error) {
	type w PatID
	return tagged(TagPatID, w(p))
}

func (p PatWildcard) MarshalJSON() ([]byte, error) {
	type w PatWildcard
	return tagged(TagPatWildcard, w(p))
}

func (p PatConstructor) MarshalJSON() ([]byte, error) {
	type w PatConstructor
	return tagged(TagPatConstructor, w(p))
}

func (p PatTuple) MarshalJSON() ([]byte, error) {
	type w PatTuple
	return tagged(TagPatTuple, w(p))
}

func (p PatList) MarshalJSON() ([]byte, error) {
	type w PatList
	return tagged(TagPatList, w(p))
}

func (p PatRecord) MarshalJSON() ([]byte, error) {
	type w PatRecord
	return tagged(TagPatRecord, w(p))
}

func (p PatTyped) MarshalJSON() ([]byte, error) {
	type w PatTyped
	return tagged(TagPatTyped, w(p))
}

func (p PatOr) MarshalJSON() ([]byte, error) {
	type w PatOr
	return tagged(TagPatOr, w(p))
}

func (p PatAs) MarshalJSON() ([]byte, error) {
	type w PatAs
	return tagged(TagPatAs, w(p))
}

func (p PatExpr) MarshalJSON() ([]byte, error) {
	type w PatExpr
	return tagged(TagPatExpr, w(p))
}

func (p OtherPat) MarshalJSON() ([]byte, error) {
	type w OtherPat
	return tagged(TagOtherPat, w(p))
}
