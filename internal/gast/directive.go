package gast

import "uast/internal/token"

// Directive is the import/export/namespace hierarchy.
type Directive interface {
	dirNode()
	Tag() string
}

// Stable wire tags for Directive variants.
const (
	TagImportFrom     = "ImportFrom"
	TagImportModule   = "ImportAs"
	TagImportAll      = "ImportAll"
	TagExport         = "Export"
	TagPackage        = "Package"
	TagPragma         = "Pragma"
	TagOtherDirective = "OtherDirective"
)

// ImportedName is one imported entity with an optional local alias.
type ImportedName struct {
	Ident Ident      `json:"ident"`
	Alias Opt[Ident] `json:"alias,omitzero"`
}

// ImportFrom imports selected entities out of a module:
// from m import a, b as c.
type ImportFrom struct {
	Tok    token.Token    `json:"tok"`
	Module DottedIdent    `json:"module"`
	Names  []ImportedName `json:"names"`
}

// ImportModule imports a module as a value, optionally renamed:
// import m [as alias].
type ImportModule struct {
	Tok    token.Token `json:"tok"`
	Module DottedIdent `json:"module"`
	Alias  Opt[Ident]  `json:"alias,omitzero"`
}

// ImportAll dumps a module's names into scope: from m import *. The
// Wildcard token points at the star (or its synthetic stand-in).
type ImportAll struct {
	Tok      token.Token `json:"tok"`
	Module   DottedIdent `json:"module"`
	Wildcard token.Token `json:"wildcard"`
}

type Export struct {
	Tok   token.Token `json:"tok"`
	Names []Ident     `json:"names"`
}

// Package declares the namespace the rest of the unit lives in.
type Package struct {
	Tok  token.Token `json:"tok"`
	Name DottedIdent `json:"name"`
}

// Pragma is a compiler/front-end directive with free-form arguments.
type Pragma struct {
	Tok   token.Token `json:"tok"`
	Ident Ident       `json:"ident"`
	Args  []Any       `json:"args"`
}

type OtherDirective struct {
	Todo  string `json:"todo"`
	Parts []Any  `json:"parts"`
}

func (ImportFrom) dirNode()     {}
func (ImportModule) dirNode()   {}
func (ImportAll) dirNode()      {}
func (Export) dirNode()         {}
func (Package) dirNode()        {}
func (Pragma) dirNode()         {}
func (OtherDirective) dirNode() {}

func (ImportFrom) Tag() string     { return TagImportFrom }
func (ImportModule) Tag() string   { return TagImportModule }
func (ImportAll) Tag() string      { return TagImportAll }
func (Export) Tag() string         { return TagExport }
func (Package) Tag() string        { return TagPackage }
func (Pragma) Tag() string         { return TagPragma }
func (OtherDirective) Tag() string { return TagOtherDirective }

func (d ImportFrom) MarshalJSON() ([]byte, error) {
	type w ImportFrom
	return tagged(TagImportFrom, w(d))
}

func (d ImportModule) MarshalJSON() ([]byte, error) {
	type w ImportModule
	return tagged(TagImportModule, w(d))
}

func (d ImportAll) MarshalJSON() ([]byte, error) {
	type w ImportAll
	return tagged(TagImportAll, w(d))
}

func (d Export) MarshalJSON() ([]byte, error) {
	type w Export
	return tagged(TagExport, w(d))
}

func (d Package) MarshalJSON() ([]byte, error) {
	type w Package
	return tagged(TagPackage, w(d))
}

func (d Pragma) MarshalJSON() ([]byte, error) {
	type w Pragma
	return tagged(TagPragma, w(d))
}

func (d OtherDirective) MarshalJSON() ([]byte, error) {
	type w OtherDirective
	return tagged(TagOtherDirective, w(d))
}
