package gast

import "uast/internal/token"

// Expr is the expression hierarchy: a closed-but-extensible tagged union.
// Languages that draw no line between statements and expressions use the
// control-flow-as-expression variants (Conditional, Yield, Await) and
// StmtExpr; statement-only languages wrap expressions in ExprStmt on the
// statement side instead.
type Expr interface {
	exprNode()
	Tag() string
}

// Stable wire tags for Expr variants. L and N follow the interchange
// convention for the two hottest variants: literal and name.
const (
	TagLit           = "L"
	TagNameRef       = "N"
	TagContainer     = "Container"
	TagComprehension = "Comprehension"
	TagRecordLit     = "Record"
	TagConstructor   = "Constructor"
	TagLambda        = "Lambda"
	TagCall          = "Call"
	TagNew           = "New"
	TagDotAccess     = "DotAccess"
	TagArrayAccess   = "ArrayAccess"
	TagSliceAccess   = "SliceAccess"
	TagAssign        = "Assign"
	TagAssignOp      = "AssignOp"
	TagLetPattern    = "LetPattern"
	TagUnary         = "Unary"
	TagBinary        = "Binary"
	TagConditional   = "Conditional"
	TagYield         = "Yield"
	TagAwait         = "Await"
	TagCast          = "Cast"
	TagRef           = "Ref"
	TagDeref         = "DeRef"
	TagSeq           = "Seq"
	TagStmtExpr      = "StmtExpr"
	TagOtherExpr     = "OtherExpr"
)

// Lit is a literal value in expression position.
type Lit struct {
	Value Literal `json:"value"`
}

// NameRef is an identifier occurrence in expression position.
type NameRef struct {
	Name Name `json:"name"`
}

// Container constructs a composite value. All container shapes share one
// ContainerKind tag; Dict elements are key/value Binary pairs or
// OtherExpr entries, per front-end lowering.
type Container struct {
	Kind  ContainerKind     `json:"kind"`
	Elems Bracketed[[]Expr] `json:"elems"`
}

// Comprehension is a container built by iteration, e.g. Python's
// [x*2 for x in xs if x > 0]. It shares ContainerKind with Container.
type Comprehension struct {
	Kind    ContainerKind `json:"kind"`
	Body    Expr          `json:"body"`
	Clauses []CompClause  `json:"clauses"`
}

// CompClause is one for/if clause of a comprehension.
type CompClause interface {
	compClause()
	Tag() string
}

const (
	TagCompFor   = "CompFor"
	TagCompIf    = "CompIf"
	TagOtherComp = "OtherComp"
)

type CompFor struct {
	Tok  token.Token `json:"tok"`
	Pat  Pattern     `json:"pat"`
	Iter Expr        `json:"iter"`
}

type CompIf struct {
	Tok  token.Token `json:"tok"`
	Cond Expr        `json:"cond"`
}

type OtherComp struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (CompFor) compClause()   {}
func (CompIf) compClause()    {}
func (OtherComp) compClause() {}

func (CompFor) Tag() string   { return TagCompFor }
func (CompIf) Tag() string    { return TagCompIf }
func (OtherComp) Tag() string { return TagOtherComp }

// RecordLit is an anonymous record value: {x: 1, y: 2} as a value, object
// literals, struct literals without a named type.
type RecordLit struct {
	Fields Bracketed[[]Definition] `json:"fields"`
}

// Constructor applies a data constructor to arguments, for languages where
// that is distinct from a call (OCaml, Haskell, Elixir).
type Constructor struct {
	Name Name   `json:"name"`
	Args []Expr `json:"args"`
}

// Lambda is an anonymous function; it reuses the full FuncDef shape so
// parameters, attributes and bodies look the same as named functions.
type Lambda struct {
	Def FuncDef `json:"def"`
}

// Call applies a callable to an argument list.
type Call struct {
	Fn   Expr                  `json:"fn"`
	Args Bracketed[[]Argument] `json:"args"`
}

// New is object construction where the language distinguishes it from a
// call. Whether a call-like syntax lowers to Call or New is a front-end
// decision.
type New struct {
	Tok  token.Token           `json:"tok"`
	Ty   TypeExpr              `json:"ty"`
	Args Bracketed[[]Argument] `json:"args"`
}

// DotAccess is static member access: `.`, `::`, `->`, `#` syntaxes. The
// Op token preserves which spelling the source used.
type DotAccess struct {
	Obj   Expr        `json:"obj"`
	Op    token.Token `json:"op"`
	Field Name        `json:"field"`
}

// ArrayAccess is dynamic, computed access: a[i]. A language that uses
// index syntax for static property access lowers into DotAccess instead;
// the split is semantic, not syntactic.
type ArrayAccess struct {
	Obj   Expr            `json:"obj"`
	Index Bracketed[Expr] `json:"index"`
}

// SliceBounds are the optional components of a slice: a[lo:hi:step].
type SliceBounds struct {
	Lo   Opt[Expr] `json:"lo,omitzero"`
	Hi   Opt[Expr] `json:"hi,omitzero"`
	Step Opt[Expr] `json:"step,omitzero"`
}

type SliceAccess struct {
	Obj    Expr                   `json:"obj"`
	Bounds Bracketed[SliceBounds] `json:"bounds"`
}

// Assign is plain assignment. LHS is typically addressable but may be a
// pattern-shaped expression (tuple, container, record) for destructuring
// assignment.
type Assign struct {
	LHS Expr        `json:"lhs"`
	Op  token.Token `json:"op"`
	RHS Expr        `json:"rhs"`
}

// AssignOp is compound assignment: x += e.
type AssignOp struct {
	LHS Expr              `json:"lhs"`
	Op  Wrapped[Operator] `json:"op"`
	RHS Expr              `json:"rhs"`
}

// LetPattern binds a pattern to a value in expression position.
type LetPattern struct {
	Pat Pattern     `json:"pat"`
	Tok token.Token `json:"tok"`
	RHS Expr        `json:"rhs"`
}

type Unary struct {
	Op Wrapped[Operator] `json:"op"`
	X  Expr              `json:"x"`
}

type Binary struct {
	Op Wrapped[Operator] `json:"op"`
	X  Expr              `json:"x"`
	Y  Expr              `json:"y"`
}

// Conditional is if-as-expression / the ternary operator.
type Conditional struct {
	Cond Expr `json:"cond"`
	Then Expr `json:"then"`
	Else Expr `json:"else"`
}

type Yield struct {
	Tok   token.Token `json:"tok"`
	Value Opt[Expr]   `json:"value,omitzero"`
	From  bool        `json:"from"`
}

type Await struct {
	Tok token.Token `json:"tok"`
	X   Expr        `json:"x"`
}

type Cast struct {
	X  Expr     `json:"x"`
	Ty TypeExpr `json:"ty"`
}

// Ref takes a reference: &x.
type Ref struct {
	Tok token.Token `json:"tok"`
	X   Expr        `json:"x"`
}

// Deref follows a reference: *x.
type Deref struct {
	Tok token.Token `json:"tok"`
	X   Expr        `json:"x"`
}

// Seq is a comma sequence evaluating to its last item.
type Seq struct {
	Items []Expr `json:"items"`
}

// StmtExpr embeds a statement in expression position, for languages where
// blocks and declarations produce values.
type StmtExpr struct {
	S Stmt `json:"s"`
}

// OtherExpr is the escape hatch: a construct with no first-class variant,
// kept as a todo tag plus its heterogeneous sub-parts. A consumer that
// does not recognize the tag can still recover the original span by
// scanning Parts for tokens.
type OtherExpr struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (Lit) exprNode()           {}
func (NameRef) exprNode()       {}
func (Container) exprNode()     {}
func (Comprehension) exprNode() {}
func (RecordLit) exprNode()     {}
func (Constructor) exprNode()   {}
func (Lambda) exprNode()        {}
func (Call) exprNode()          {}
func (New) exprNode()           {}
func (DotAccess) exprNode()     {}
func (ArrayAccess) exprNode()   {}
func (SliceAccess) exprNode()   {}
func (Assign) exprNode()        {}
func (AssignOp) exprNode()      {}
func (LetPattern) exprNode()    {}
func (Unary) exprNode()         {}
func (Binary) exprNode()        {}
func (Conditional) exprNode()   {}
func (Yield) exprNode()         {}
func (Await) exprNode()         {}
func (Cast) exprNode()          {}
func (Ref) exprNode()           {}
func (Deref) exprNode()         {}
func (Seq) exprNode()           {}
func (StmtExpr) exprNode()      {}
func (OtherExpr) exprNode()     {}

func (Lit) Tag() string           { return TagLit }
func (NameRef) Tag() string       { return TagNameRef }
func (Container) Tag() string     { return TagContainer }
func (Comprehension) Tag() string { return TagComprehension }
func (RecordLit) Tag() string     { return TagRecordLit }
func (Constructor) Tag() string   { return TagConstructor }
func (Lambda) Tag() string        { return TagLambda }
func (Call) Tag() string          { return TagCall }
func (New) Tag() string           { return TagNew }
func (DotAccess) Tag() string     { return TagDotAccess }
func (ArrayAccess) Tag() string   { return TagArrayAccess }
func (SliceAccess) Tag() string   { return TagSliceAccess }
func (Assign) Tag() string        { return TagAssign }
func (AssignOp) Tag() string      { return TagAssignOp }
func (LetPattern) Tag() string    { return TagLetPattern }
func (Unary) Tag() string         { return TagUnary }
func (Binary) Tag() string        { return TagBinary }
func (Conditional) Tag() string   { return TagConditional }
func (Yield) Tag() string         { return TagYield }
func (Await) Tag() string         { return TagAwait }
func (Cast) Tag() string          { return TagCast }
func (Ref) Tag() string           { return TagRef }
func (Deref) Tag() string         { return TagDeref }
func (Seq) Tag() string           { return TagSeq }
func (StmtExpr) Tag() string      { return TagStmtExpr }
func (OtherExpr) Tag() string     { return TagOtherExpr }
