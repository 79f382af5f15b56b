package gast

import "uast/internal/token"

// Stmt is the statement hierarchy. Statement-only languages wrap their
// expressions in ExprStmt; languages without a statement/expression split
// appear here only through DefStmt, DirectiveStmt and Block.
type Stmt interface {
	stmtNode()
	Tag() string
}

// Stable wire tags for Stmt variants.
const (
	TagExprStmt      = "ExprStmt"
	TagBlock         = "Block"
	TagIf            = "If"
	TagWhile         = "While"
	TagDoWhile       = "DoWhile"
	TagFor           = "For"
	TagReturn        = "Return"
	TagBreak         = "Break"
	TagContinue      = "Continue"
	TagLabeled       = "Label"
	TagGoto          = "Goto"
	TagSwitch        = "Switch"
	TagTry           = "Try"
	TagThrow         = "Throw"
	TagAssert        = "Assert"
	TagWith          = "With"
	TagDefStmt       = "DefStmt"
	TagDirectiveStmt = "DirectiveStmt"
	TagOtherStmt     = "OtherStmt"
)

// ExprStmt is an expression in statement position. Semi is the statement
// terminator token, synthetic for languages without one.
type ExprStmt struct {
	X    Expr        `json:"x"`
	Semi token.Token `json:"semi"`
}

// Block is a brace- or layout-delimited statement sequence. Layout-based
// languages use synthetic delimiter tokens.
type Block struct {
	Stmts Bracketed[[]Stmt] `json:"stmts"`
}

type If struct {
	Tok  token.Token `json:"tok"`
	Cond Expr        `json:"cond"`
	Then Stmt        `json:"then"`
	Else Opt[Stmt]   `json:"else,omitzero"`
}

type While struct {
	Tok  token.Token `json:"tok"`
	Cond Expr        `json:"cond"`
	Body Stmt        `json:"body"`
}

type DoWhile struct {
	Tok  token.Token `json:"tok"`
	Body Stmt        `json:"body"`
	Cond Expr        `json:"cond"`
}

// ForHeader is the per-language loop header shape.
type ForHeader interface {
	forHeader()
	Tag() string
}

const (
	TagForClassic     = "ForClassic"
	TagForEach        = "ForEach"
	TagOtherForHeader = "OtherForHeader"
)

// ForClassic is the C-style three-part header; every part is genuinely
// optional.
type ForClassic struct {
	Init []Stmt    `json:"init"`
	Cond Opt[Expr] `json:"cond,omitzero"`
	Step Opt[Expr] `json:"step,omitzero"`
}

// ForEach iterates a collection, binding a pattern per element.
type ForEach struct {
	Pat  Pattern     `json:"pat"`
	Tok  token.Token `json:"tok"`
	Iter Expr        `json:"iter"`
}

type OtherForHeader struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (ForClassic) forHeader()     {}
func (ForEach) forHeader()        {}
func (OtherForHeader) forHeader() {}

func (ForClassic) Tag() string     { return TagForClassic }
func (ForEach) Tag() string        { return TagForEach }
func (OtherForHeader) Tag() string { return TagOtherForHeader }

type For struct {
	Tok    token.Token `json:"tok"`
	Header ForHeader   `json:"header"`
	Body   Stmt        `json:"body"`
}

type Return struct {
	Tok   token.Token `json:"tok"`
	Value Opt[Expr]   `json:"value,omitzero"`
}

type Break struct {
	Tok   token.Token `json:"tok"`
	Label Opt[Ident]  `json:"label,omitzero"`
}

type Continue struct {
	Tok   token.Token `json:"tok"`
	Label Opt[Ident]  `json:"label,omitzero"`
}

type Labeled struct {
	Ident Ident `json:"ident"`
	S     Stmt  `json:"s"`
}

type Goto struct {
	Tok   token.Token `json:"tok"`
	Label Ident       `json:"label"`
}

// Case is one guard of a switch clause; languages disagree on whether
// cases hold expressions or patterns, so both shapes are first-class.
type Case interface {
	caseNode()
	Tag() string
}

const (
	TagCaseEq      = "Case"
	TagCasePat     = "CasePat"
	TagCaseDefault = "Default"
	TagOtherCase   = "OtherCase"
)

type CaseEq struct {
	Tok token.Token `json:"tok"`
	X   Expr        `json:"x"`
}

type CasePat struct {
	Tok token.Token `json:"tok"`
	Pat Pattern     `json:"pat"`
}

type CaseDefault struct {
	Tok token.Token `json:"tok"`
}

type OtherCase struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (CaseEq) caseNode()      {}
func (CasePat) caseNode()     {}
func (CaseDefault) caseNode() {}
func (OtherCase) caseNode()   {}

func (CaseEq) Tag() string      { return TagCaseEq }
func (CasePat) Tag() string     { return TagCasePat }
func (CaseDefault) Tag() string { return TagCaseDefault }
func (OtherCase) Tag() string   { return TagOtherCase }

// CaseClause pairs one or more case guards with a body.
type CaseClause struct {
	Cases []Case `json:"cases"`
	Body  Stmt   `json:"body"`
}

// Switch covers switch/case and match statements. Subject is optional:
// some languages allow subject-less condition switches.
type Switch struct {
	Tok     token.Token  `json:"tok"`
	Subject Opt[Expr]    `json:"subject,omitzero"`
	Cases   []CaseClause `json:"cases"`
}

// Catch is one exception handler arm.
type Catch struct {
	Tok  token.Token `json:"tok"`
	Pat  Pattern     `json:"pat"`
	Body Stmt        `json:"body"`
}

type Try struct {
	Tok     token.Token `json:"tok"`
	Body    Stmt        `json:"body"`
	Catches []Catch     `json:"catches"`
	Finally Opt[Stmt]   `json:"finally,omitzero"`
}

type Throw struct {
	Tok token.Token `json:"tok"`
	X   Expr        `json:"x"`
}

type Assert struct {
	Tok  token.Token `json:"tok"`
	Cond Expr        `json:"cond"`
	Msg  Opt[Expr]   `json:"msg,omitzero"`
}

// With is a scoped-resource block: Python with, C# using, Java
// try-with-resources. Resources are statements so both bindings and bare
// expressions fit.
type With struct {
	Tok       token.Token `json:"tok"`
	Resources []Stmt      `json:"resources"`
	Body      Stmt        `json:"body"`
}

// DefStmt is a definition in statement position.
type DefStmt struct {
	Def Definition `json:"def"`
}

// DirectiveStmt is a directive in statement position.
type DirectiveStmt struct {
	Dir Directive `json:"dir"`
}

// OtherStmt is the statement escape hatch.
type OtherStmt struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (ExprStmt) stmtNode()      {}
func (Block) stmtNode()         {}
func (If) stmtNode()            {}
func (While) stmtNode()         {}
func (DoWhile) stmtNode()       {}
func (For) stmtNode()           {}
func (Return) stmtNode()        {}
func (Break) stmtNode()         {}
func (Continue) stmtNode()      {}
func (Labeled) stmtNode()       {}
func (Goto) stmtNode()          {}
func (Switch) stmtNode()        {}
func (Try) stmtNode()           {}
func (Throw) stmtNode()         {}
func (Assert) stmtNode()        {}
func (With) stmtNode()          {}
func (DefStmt) stmtNode()       {}
func (DirectiveStmt) stmtNode() {}
func (OtherStmt) stmtNode()     {}

func (ExprStmt) Tag() string      { return TagExprStmt }
func (Block) Tag() string         { return TagBlock }
func (If) Tag() string            { return TagIf }
func (While) Tag() string         { return TagWhile }
func (DoWhile) Tag() string       { return TagDoWhile }
func (For) Tag() string           { return TagFor }
func (Return) Tag() string        { return TagReturn }
func (Break) Tag() string         { return TagBreak }
func (Continue) Tag() string      { return TagContinue }
func (Labeled) Tag() string       { return TagLabeled }
func (Goto) Tag() string          { return TagGoto }
func (Switch) Tag() string        { return TagSwitch }
func (Try) Tag() string           { return TagTry }
func (Throw) Tag() string         { return TagThrow }
func (Assert) Tag() string        { return TagAssert }
func (With) Tag() string          { return TagWith }
func (DefStmt) Tag() string       { return TagDefStmt }
func (DirectiveStmt) Tag() string { return TagDirectiveStmt }
func (OtherStmt) Tag() string     { return TagOtherStmt }
