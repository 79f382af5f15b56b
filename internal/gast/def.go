package gast

import "uast/internal/token"

// Entity is the metadata every definition kind shares: its (possibly
// qualified) name, attributes, and type parameters. Generic passes like
// "find all definitions with attribute X" work on Entity alone, without
// per-kind special-casing.
type Entity struct {
	Name    Name        `json:"name"`
	Attrs   []Attribute `json:"attrs"`
	TParams []TypeParam `json:"tparams"`
}

// Definition pairs one Entity with exactly one kind payload.
type Definition struct {
	Entity Entity  `json:"entity"`
	Kind   DefKind `json:"kind"`
}

// DefKind is the per-kind body of a definition.
type DefKind interface {
	defKind()
	Tag() string
}

// Stable wire tags for DefKind variants.
const (
	TagFuncDef      = "FuncDef"
	TagVarDef       = "VarDef"
	TagClassDef     = "ClassDef"
	TagEnumDef      = "EnumDef"
	TagModuleDef    = "ModuleDef"
	TagMacroDef     = "MacroDef"
	TagTypeAliasDef = "TypeAliasDef"
	TagOtherDef     = "OtherDef"
)

// FuncKind records what flavor of callable a FuncDef came from.
type FuncKind uint8

const (
	FuncFunction FuncKind = iota
	FuncMethod
	FuncLambda
	FuncArrow
)

var funcKindNames = [...]string{
	FuncFunction: "Function",
	FuncMethod:   "Method",
	FuncLambda:   "Lambda",
	FuncArrow:    "Arrow",
}

func (k FuncKind) String() string {
	if int(k) < len(funcKindNames) {
		return funcKindNames[k]
	}
	return "Function"
}

func (k FuncKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FuncKind) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range funcKindNames {
		if name == s {
			*k = FuncKind(i)
			return nil
		}
	}
	*k = FuncFunction
	return nil
}

// FuncBody distinguishes block bodies, single-expression bodies, and
// declared-but-bodiless signatures.
type FuncBody interface {
	funcBody()
	Tag() string
}

const (
	TagBlockBody = "BlockBody"
	TagExprBody  = "ExprBody"
	TagNoBody    = "NoBody"
)

type BlockBody struct {
	S Stmt `json:"s"`
}

type ExprBody struct {
	X Expr `json:"x"`
}

// NoBody marks a signature-only function; the token points at the place
// a body would start.
type NoBody struct {
	Tok token.Token `json:"tok"`
}

func (BlockBody) funcBody() {}
func (ExprBody) funcBody()  {}
func (NoBody) funcBody()    {}

func (BlockBody) Tag() string { return TagBlockBody }
func (ExprBody) Tag() string  { return TagExprBody }
func (NoBody) Tag() string    { return TagNoBody }

// FuncDef is a function, method, or lambda body.
type FuncDef struct {
	FKind  Wrapped[FuncKind]      `json:"fkind"`
	Params Bracketed[[]Parameter] `json:"params"`
	Ret    Opt[TypeExpr]          `json:"ret,omitzero"`
	Body   FuncBody               `json:"body"`
}

// VarDef is a variable or constant definition; both the initializer and
// the declared type are genuinely optional.
type VarDef struct {
	Init Opt[Expr]     `json:"init,omitzero"`
	Ty   Opt[TypeExpr] `json:"ty,omitzero"`
}

// ClassKind distinguishes the class-like definition flavors.
type ClassKind uint8

const (
	KindClass ClassKind = iota
	KindInterface
	KindTrait
	KindObject
)

var classKindNames = [...]string{
	KindClass:     "Class",
	KindInterface: "Interface",
	KindTrait:     "Trait",
	KindObject:    "Object",
}

func (k ClassKind) String() string {
	if int(k) < len(classKindNames) {
		return classKindNames[k]
	}
	return "Class"
}

func (k ClassKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ClassKind) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range classKindNames {
		if name == s {
			*k = ClassKind(i)
			return nil
		}
	}
	*k = KindClass
	return nil
}

// ClassDef is a class, interface, trait, or singleton object.
type ClassDef struct {
	CKind      Wrapped[ClassKind]      `json:"ckind"`
	Extends    []TypeExpr              `json:"extends"`
	Implements []TypeExpr              `json:"implements"`
	Body       Bracketed[[]Definition] `json:"body"`
}

// EnumCase is one alternative of an enum: a bare name, a payload-carrying
// constructor, or a valued case.
type EnumCase struct {
	Ident Ident      `json:"ident"`
	Args  []TypeExpr `json:"args"`
	Value Opt[Expr]  `json:"value,omitzero"`
}

type EnumDef struct {
	Cases []EnumCase `json:"cases"`
}

// ModuleBody is either an alias to another module or an inline body.
type ModuleBody interface {
	moduleBody()
	Tag() string
}

const (
	TagModuleAlias = "ModuleAlias"
	TagModuleStmts = "ModuleStmts"
	TagOtherModule = "OtherModule"
)

type ModuleAlias struct {
	Name DottedIdent `json:"name"`
}

type ModuleStmts struct {
	Stmts []Stmt `json:"stmts"`
}

type OtherModule struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (ModuleAlias) moduleBody() {}
func (ModuleStmts) moduleBody() {}
func (OtherModule) moduleBody() {}

func (ModuleAlias) Tag() string { return TagModuleAlias }
func (ModuleStmts) Tag() string { return TagModuleStmts }
func (OtherModule) Tag() string { return TagOtherModule }

type ModuleDef struct {
	Body ModuleBody `json:"body"`
}

// MacroDef keeps a macro's parameters and its unexpanded body as a
// heterogeneous Any sequence, since macro bodies mix every hierarchy.
type MacroDef struct {
	Params []Ident `json:"params"`
	Body   []Any   `json:"body"`
}

type TypeAliasDef struct {
	Ty TypeExpr `json:"ty"`
}

// OtherDef is the definition escape hatch.
type OtherDef struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (FuncDef) defKind()      {}
func (VarDef) defKind()       {}
func (ClassDef) defKind()     {}
func (EnumDef) defKind()      {}
func (ModuleDef) defKind()    {}
func (MacroDef) defKind()     {}
func (TypeAliasDef) defKind() {}
func (OtherDef) defKind()     {}

func (FuncDef) Tag() string      { return TagFuncDef }
func (VarDef) Tag() string       { return TagVarDef }
func (ClassDef) Tag() string     { return TagClassDef }
func (EnumDef) Tag() string      { return TagEnumDef }
func (ModuleDef) Tag() string    { return TagModuleDef }
func (MacroDef) Tag() string     { return TagMacroDef }
func (TypeAliasDef) Tag() string { return TagTypeAliasDef }
func (OtherDef) Tag() string     { return TagOtherDef }
