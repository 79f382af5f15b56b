package gast

import "uast/internal/token"

// Any is the universal container: one tagged union over every hierarchy,
// used for heterogeneous lists (catch-all payloads, macro bodies) and for
// uniform traversal. It is never a substitute for a dedicated variant
// where one exists; unwrapping always recovers the exact hierarchy member.
type Any interface {
	anyNode()
	Tag() string
}

// Stable wire tags for Any variants, one per hierarchy.
const (
	TagAnyExpr  = "E"
	TagAnyStmt  = "S"
	TagAnyPat   = "P"
	TagAnyType  = "T"
	TagAnyDef   = "Def"
	TagAnyDir   = "Dir"
	TagAnyAttr  = "At"
	TagAnyArg   = "Ar"
	TagAnyParam = "Pa"
	TagAnyName  = "Name"
	TagAnyIdent = "I"
	TagAnyTok   = "Tk"
)

type AnyExpr struct {
	X Expr `json:"x"`
}

type AnyStmt struct {
	S Stmt `json:"s"`
}

type AnyPat struct {
	P Pattern `json:"p"`
}

type AnyType struct {
	T TypeExpr `json:"t"`
}

type AnyDef struct {
	D Definition `json:"d"`
}

type AnyDir struct {
	D Directive `json:"d"`
}

type AnyAttr struct {
	A Attribute `json:"a"`
}

type AnyArg struct {
	A Argument `json:"a"`
}

type AnyParam struct {
	P Parameter `json:"p"`
}

type AnyName struct {
	N Name `json:"n"`
}

type AnyIdent struct {
	I Ident `json:"i"`
}

type AnyTok struct {
	T token.Token `json:"t"`
}

func (AnyExpr) anyNode()  {}
func (AnyStmt) anyNode()  {}
func (AnyPat) anyNode()   {}
func (AnyType) anyNode()  {}
func (AnyDef) anyNode()   {}
func (AnyDir) anyNode()   {}
func (AnyAttr) anyNode()  {}
func (AnyArg) anyNode()   {}
func (AnyParam) anyNode() {}
func (AnyName) anyNode()  {}
func (AnyIdent) anyNode() {}
func (AnyTok) anyNode()   {}

func (AnyExpr) Tag() string  { return TagAnyExpr }
func (AnyStmt) Tag() string  { return TagAnyStmt }
func (AnyPat) Tag() string   { return TagAnyPat }
func (AnyType) Tag() string  { return TagAnyType }
func (AnyDef) Tag() string   { return TagAnyDef }
func (AnyDir) Tag() string   { return TagAnyDir }
func (AnyAttr) Tag() string  { return TagAnyAttr }
func (AnyArg) Tag() string   { return TagAnyArg }
func (AnyParam) Tag() string { return TagAnyParam }
func (AnyName) Tag() string  { return TagAnyName }
func (AnyIdent) Tag() string { return TagAnyIdent }
func (AnyTok) Tag() string   { return TagAnyTok }

func (a AnyExpr) MarshalJSON() ([]byte, error) {
	type w AnyExpr
	return tagged(TagAnyExpr, w(a))
}

func (a AnyStmt) MarshalJSON() ([]byte, error) {
	type w AnyStmt
	return tagged(TagAnyStmt, w(a))
}

func (a AnyPat) MarshalJSON() ([]byte, error) {
	type w AnyPat
	return tagged(TagAnyPat, w(a))
}

func (a AnyType) MarshalJSON() ([]byte, error) {
	type w AnyType
	return tagged(TagAnyType, w(a))
}

func (a AnyDef) MarshalJSON() ([]byte, error) {
	type w AnyDef
	return tagged(TagAnyDef, w(a))
}

func (a AnyDir) MarshalJSON() ([]byte, error) {
	type w AnyDir
	return tagged(TagAnyDir, w(a))
}

func (a AnyAttr) MarshalJSON() ([]byte, error) {
	type w AnyAttr
	return tagged(TagAnyAttr, w(a))
}

func (a AnyArg) MarshalJSON() ([]byte, error) {
	type w AnyArg
	return tagged(TagAnyArg, w(a))
}

func (a AnyParam) MarshalJSON() ([]byte, error) {
	type w AnyParam
	return tagged(TagAnyParam, w(a))
}

func (a AnyName) MarshalJSON() ([]byte, error) {
	type w AnyName
	return tagged(TagAnyName, w(a))
}

func (a AnyIdent) MarshalJSON() ([]byte, error) {
	type w AnyIdent
	return tagged(TagAnyIdent, w(a))
}

func (a AnyTok) MarshalJSON() ([]byte, error) {
	type w AnyTok
	return tagged(TagAnyTok, w(a))
}
