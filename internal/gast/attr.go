package gast

import "uast/internal/token"

// Attribute is a decorator, annotation, or modifier keyword attached to a
// definition.
type Attribute interface {
	attrNode()
	Tag() string
}

const (
	TagKeywordAttr = "KeywordAttr"
	TagNamedAttr   = "NamedAttr"
	TagOtherAttr   = "OtherAttr"
)

// AttrKind is the cross-language modifier vocabulary.
type AttrKind uint8

const (
	AttrStatic AttrKind = iota
	AttrPublic
	AttrPrivate
	AttrProtected
	AttrAbstract
	AttrFinal
	AttrConst
	AttrMutable
	AttrAsync
	AttrOverride
	AttrExtern
	AttrInline
)

var attrKindNames = [...]string{
	AttrStatic:    "Static",
	AttrPublic:    "Public",
	AttrPrivate:   "Private",
	AttrProtected: "Protected",
	AttrAbstract:  "Abstract",
	AttrFinal:     "Final",
	AttrConst:     "Const",
	AttrMutable:   "Mutable",
	AttrAsync:     "Async",
	AttrOverride:  "Override",
	AttrExtern:    "Extern",
	AttrInline:    "Inline",
}

func (k AttrKind) String() string {
	if int(k) < len(attrKindNames) {
		return attrKindNames[k]
	}
	return "Static"
}

func (k AttrKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *AttrKind) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range attrKindNames {
		if name == s {
			*k = AttrKind(i)
			return nil
		}
	}
	*k = AttrStatic
	return nil
}

// KeywordAttr is a bare modifier: static, pub, final.
type KeywordAttr struct {
	Kw Wrapped[AttrKind] `json:"kw"`
}

// NamedAttr is a decorator/annotation with arguments: @Deprecated("msg").
type NamedAttr struct {
	Tok  token.Token           `json:"tok"`
	Name Name                  `json:"name"`
	Args Bracketed[[]Argument] `json:"args"`
}

type OtherAttr struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (KeywordAttr) attrNode() {}
func (NamedAttr) attrNode()   {}
func (OtherAttr) attrNode()   {}

func (KeywordAttr) Tag() string { return TagKeywordAttr }
func (NamedAttr) Tag() string   { return TagNamedAttr }
func (OtherAttr) Tag() string   { return TagOtherAttr }

// Parameter is one formal parameter of a callable.
type Parameter interface {
	paramNode()
	Tag() string
}

const (
	TagParamClassic = "ParamClassic"
	TagParamPattern = "ParamPattern"
	TagParamRest    = "ParamRest"
	TagOtherParam   = "OtherParam"
)

// ParamClassic is a named parameter; the identifier carries a resolution
// slot, like every binding occurrence.
type ParamClassic struct {
	Ident   Ident         `json:"ident"`
	Info    *IDInfo       `json:"info,omitzero"`
	Ty      Opt[TypeExpr] `json:"ty,omitzero"`
	Default Opt[Expr]     `json:"default,omitzero"`
	Attrs   []Attribute   `json:"attrs"`
}

// ParamPattern destructures its argument: def f((a, b)).
type ParamPattern struct {
	Pat Pattern       `json:"pat"`
	Ty  Opt[TypeExpr] `json:"ty,omitzero"`
}

// ParamRest collects trailing arguments: *args, ...rest.
type ParamRest struct {
	Tok   token.Token  `json:"tok"`
	Inner ParamClassic `json:"inner"`
}

type OtherParam struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (ParamClassic) paramNode() {}
func (ParamPattern) paramNode() {}
func (ParamRest) paramNode()    {}
func (OtherParam) paramNode()   {}

func (ParamClassic) Tag() string { return TagParamClassic }
func (ParamPattern) Tag() string { return TagParamPattern }
func (ParamRest) Tag() string    { return TagParamRest }
func (OtherParam) Tag() string   { return TagOtherParam }

// Argument is one actual argument at a call site.
type Argument interface {
	argNode()
	Tag() string
}

const (
	TagArg      = "Arg"
	TagArgKwd   = "ArgKwd"
	TagArgType  = "ArgType"
	TagOtherArg = "OtherArg"
)

type Arg struct {
	X Expr `json:"x"`
}

// ArgKwd is a keyword argument: f(x=1).
type ArgKwd struct {
	Ident Ident `json:"ident"`
	X     Expr  `json:"x"`
}

// ArgType passes a type where the language allows it: f<T>(), sizeof(T).
type ArgType struct {
	Ty TypeExpr `json:"ty"`
}

type OtherArg struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (Arg) argNode()      {}
func (ArgKwd) argNode()   {}
func (ArgType) argNode()  {}
func (OtherArg) argNode() {}

func (Arg) Tag() string      { return TagArg }
func (ArgKwd) Tag() string   { return TagArgKwd }
func (ArgType) Tag() string  { return TagArgType }
func (OtherArg) Tag() string { return TagOtherArg }

// TypeParam is one formal type parameter of a generic definition.
type TypeParam struct {
	Ident   Ident         `json:"ident"`
	Bounds  []TypeExpr    `json:"bounds"`
	Default Opt[TypeExpr] `json:"default,omitzero"`
}
