package gast

import (
	"reflect"
	"testing"

	"uast/internal/symbols"
	"uast/internal/token"
)

func TestIDInfoSettersAreMonotonic(t *testing.T) {
	info := &IDInfo{}
	first := ResolvedName{Kind: ResolvedLocal, Sym: symbols.SymbolID(3)}

	if !info.SetResolved(first) {
		t.Fatal("first write refused")
	}
	if !info.SetResolved(first) {
		t.Error("idempotent re-write refused")
	}
	conflicting := ResolvedName{Kind: ResolvedParam, Sym: symbols.SymbolID(4)}
	if info.SetResolved(conflicting) {
		t.Error("conflicting overwrite accepted")
	}
	got, ok := info.Resolved.Get()
	if !ok || !reflect.DeepEqual(got, first) {
		t.Errorf("slot holds %+v, want the first write", got)
	}
}

func TestIDInfoFieldsAreIndependent(t *testing.T) {
	info := &IDInfo{}
	info.SetType(TyName{Name: SimpleName(NewIdent("int", token.Fake("inferred")))})

	if info.Resolved.IsSet() {
		t.Error("setting a type populated the resolution slot")
	}
	if info.Const.IsSet() {
		t.Error("setting a type populated the constant slot")
	}
	if !info.Type.IsSet() {
		t.Error("type slot empty after write")
	}
}

func TestResolvedNameKindWireForm(t *testing.T) {
	tests := []struct {
		kind ResolvedNameKind
		want string
	}{
		{ResolvedGlobal, "global"},
		{ResolvedImportedEntity, "imported-entity"},
	}
	for _, tt := range tests {
		b, err := tt.kind.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.kind, err)
		}
		if string(b) != tt.want {
			t.Errorf("%v marshals to %q, want %q", tt.kind, b, tt.want)
		}
		var back ResolvedNameKind
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if back != tt.kind {
			t.Errorf("%q unmarshals to %v, want %v", b, back, tt.kind)
		}
	}

	var unknown ResolvedNameKind
	if err := unknown.UnmarshalText([]byte("thread-local")); err != nil {
		t.Fatalf("unknown kind errored: %v", err)
	}
	if unknown != ResolvedGlobal {
		t.Errorf("unknown kind = %v, want the global fallback", unknown)
	}
}
