package gast

import "uast/internal/token"

// TypeExpr is the type-expression hierarchy: named and applied types plus
// the anonymous structural forms (union, intersection, record) several
// languages can build inline without a name.
type TypeExpr interface {
	typeNode()
	Tag() string
}

// Stable wire tags for TypeExpr variants.
const (
	TagTyName    = "TyN"
	TagTyApply   = "TyApply"
	TagTyFunc    = "TyFunc"
	TagTyTuple   = "TyTuple"
	TagTyArray   = "TyArray"
	TagTyPointer = "TyPointer"
	TagTyRef     = "TyRef"
	TagTyOr      = "TyOr"
	TagTyAnd     = "TyAnd"
	TagTyRecord  = "TyRecord"
	TagTyExpr    = "TyExpr"
	TagOtherType = "OtherType"
)

// TyName is a (possibly qualified) named type.
type TyName struct {
	Name Name `json:"name"`
}

// TyApply is generic instantiation: Base<Args...>.
type TyApply struct {
	Base TypeExpr              `json:"base"`
	Args Bracketed[[]TypeExpr] `json:"args"`
}

// TyFunc is a function type.
type TyFunc struct {
	Params []Parameter `json:"params"`
	Ret    TypeExpr    `json:"ret"`
}

type TyTuple struct {
	Elems Bracketed[[]TypeExpr] `json:"elems"`
}

// TyArray is an array/slice type with an optional compile-time size.
type TyArray struct {
	Size Opt[Expr] `json:"size,omitzero"`
	Elem TypeExpr  `json:"elem"`
}

type TyPointer struct {
	Tok  token.Token `json:"tok"`
	Elem TypeExpr    `json:"elem"`
}

type TyRef struct {
	Tok  token.Token `json:"tok"`
	Elem TypeExpr    `json:"elem"`
}

// TyOr is a union type: A | B.
type TyOr struct {
	Alts []TypeExpr `json:"alts"`
}

// TyAnd is an intersection type: A & B.
type TyAnd struct {
	Alts []TypeExpr `json:"alts"`
}

// TyRecord is an anonymous record shape: { x: int, y: string }.
type TyRecord struct {
	Fields Bracketed[[]Definition] `json:"fields"`
}

// TyExpr bridges into the expression grammar for dependently-flavored or
// macro-generated types.
type TyExpr struct {
	X Expr `json:"x"`
}

// OtherType is the type escape hatch.
type OtherType struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (TyName) typeNode()    {}
func (TyApply) typeNode()   {}
func (TyFunc) typeNode()    {}
func (TyTuple) typeNode()   {}
func (TyArray) typeNode()   {}
func (TyPointer) typeNode() {}
func (TyRef) typeNode()     {}
func (TyOr) typeNode()      {}
func (TyAnd) typeNode()     {}
func (TyRecord) typeNode()  {}
func (TyExpr) typeNode()    {}
func (OtherType) typeNode() {}

func (TyName) Tag() string    { return TagTyName }
func (TyApply) Tag() string   { return TagTyApply }
func (TyFunc) Tag() string    { return TagTyFunc }
func (TyTuple) Tag() string   { return TagTyTuple }
func (TyArray) Tag() string   { return TagTyArray }
func (TyPointer) Tag() string { return TagTyPointer }
func (TyRef) Tag() string     { return TagTyRef }
func (TyOr) Tag() string      { return TagTyOr }
func (TyAnd) Tag() string     { return TagTyAnd }
func (TyRecord) Tag() string  { return TagTyRecord }
func (TyExpr) Tag() string    { return TagTyExpr }
func (OtherType) Tag() string { return TagOtherType }

func (t TyName) MarshalJSON() ([]byte, error) {
	type w TyName
	return tagged(TagTyName, w(t))
}

func (t TyApply) MarshalJSON() ([]byte, error) {
	type w TyApply
	return tagged(TagTyApply, w(t))
}

func (t TyFunc) MarshalJSON() ([]byte, error) {
	type w TyFunc
	return tagged(TagTyFunc, w(t))
}

func (t TyTuple) MarshalJSON() ([]byte, error) {
	type w TyTuple
	return tagged(TagTyTuple, w(t))
}

func (t TyArray) MarshalJSON() ([]byte, error) {
	type w TyArray
	return tagged(TagTyArray, w(t))
}

func (t TyPointer) MarshalJSON() ([]byte, error) {
	type w TyPointer
	return tagged(TagTyPointer, w(t))
}

func (t TyRef) MarshalJSON() ([]byte, error) {
	type w TyRef
	return tagged(TagTyRef, w(t))
}

func (t TyOr) MarshalJSON() ([]byte, error) {
	type w TyOr
	return tagged(TagTyOr, w(t))
}

func (t TyAnd) MarshalJSON() ([]byte, error) {
	type w TyAnd
	return tagged(TagTyAnd, w(t))
}

func (t TyRecord) MarshalJSON() ([]byte, error) {
	type w TyRecord
	return tagged(TagTyRecord, w(t))
}

func (t TyExpr) MarshalJSON() ([]byte, error) {
	type w TyExpr
	return tagged(TagTyExpr, w(t))
}

func (t OtherType) MarshalJSON() ([]byte, error) {
	type w OtherType
	return tagged(TagOtherType, w(t))
}
