package gast

import (
	"reflect"

	"uast/internal/symbols"
)

// ResolvedNameKind classifies what an identifier occurrence was resolved
// to by the binding-resolution pass.
type ResolvedNameKind uint8

const (
	ResolvedGlobal ResolvedNameKind = iota
	ResolvedLocal
	ResolvedParam
	ResolvedImportedEntity
	ResolvedImportedModule
)

var resolvedKindNames = map[ResolvedNameKind]string{
	ResolvedGlobal:         "global",
	ResolvedLocal:          "local",
	ResolvedParam:          "param",
	ResolvedImportedEntity: "imported-entity",
	ResolvedImportedModule: "imported-module",
}

func (k ResolvedNameKind) String() string {
	if s, ok := resolvedKindNames[k]; ok {
		return s
	}
	return "invalid"
}

// MarshalText keeps the wire form a stable string, not an ordinal.
func (k ResolvedNameKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ResolvedNameKind) UnmarshalText(text []byte) error {
	for kind, name := range resolvedKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	// Unknown kinds degrade to global rather than failing the decode.
	*k = ResolvedGlobal
	return nil
}

// ResolvedName is the result of binding resolution for one occurrence.
// Imported kinds carry the qualified name they resolved to, so cross-file
// references work without embedding a symbol table in the tree.
type ResolvedName struct {
	Kind ResolvedNameKind `json:"kind"`
	Sym  symbols.SymbolID `json:"sym"`
	Name Opt[DottedIdent] `json:"name,omitzero"`
}

// IDInfo is the per-occurrence annotation slot. Its three fields come from
// independent passes (binding resolution, type inference, constant
// propagation) that may run in any order or not at all; consumers treat
// each as independently absent.
//
// Within one analysis run, passes only add information. The setters
// refuse to replace an existing value with a different one; re-running a
// pass with the same result is a no-op.
type IDInfo struct {
	Resolved Opt[ResolvedName] `json:"resolved,omitzero"`
	Type     Opt[TypeExpr]     `json:"type,omitzero"`
	Const    Opt[Literal]      `json:"const,omitzero"`
}

// SetResolved records the binding-resolution result. It reports whether
// the slot now holds r.
func (i *IDInfo) SetResolved(r ResolvedName) bool {
	if prev, ok := i.Resolved.Get(); ok {
		return reflect.DeepEqual(prev, r)
	}
	i.Resolved = Some(r)
	return true
}

// SetType records the inferred type for this occurrence.
func (i *IDInfo) SetType(t TypeExpr) bool {
	if prev, ok := i.Type.Get(); ok {
		return reflect.DeepEqual(prev, t)
	}
	i.Type = Some(t)
	return true
}

// SetConst records the propagated constant value.
func (i *IDInfo) SetConst(v Literal) bool {
	if prev, ok := i.Const.Get(); ok {
		return reflect.DeepEqual(prev, v)
	}
	i.Const = Some(v)
	return true
}
