package gast

import (
	"testing"

	"uast/internal/token"
)

func TestNameDotted(t *testing.T) {
	tests := []struct {
		name string
		in   Name
		want string
	}{
		{
			"simple",
			SimpleName(NewIdent("x", token.Fake("t"))),
			"x",
		},
		{
			"qualified",
			QualifiedName(
				DottedIdent{NewIdent("pkg", token.Fake("t")), NewIdent("sub", token.Fake("t"))},
				NewIdent("f", token.Fake("t")),
			),
			"pkg.sub.f",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConstructorsAttachSlot(t *testing.T) {
	n := SimpleName(NewIdent("x", token.Fake("t")))
	if n.Info == nil {
		t.Fatal("SimpleName left the resolution slot nil")
	}
	q := QualifiedName(DottedIdent{NewIdent("m", token.Fake("t"))}, NewIdent("y", token.Fake("t")))
	if q.Info == nil {
		t.Fatal("QualifiedName left the resolution slot nil")
	}
	// Slots are per occurrence, never shared.
	n.Info.SetType(TyName{Name: Name{Ident: NewIdent("int", token.Fake("t"))}})
	if q.Info.Type.IsSet() {
		t.Error("two occurrences share one slot")
	}
}

func TestOptPresence(t *testing.T) {
	var absent Opt[int]
	if absent.IsSet() || !absent.IsZero() {
		t.Error("zero Opt is not absent")
	}
	if got := absent.GetOr(42); got != 42 {
		t.Errorf("GetOr on absent = %d, want the default", got)
	}

	some := Some(7)
	if v, ok := some.Get(); !ok || v != 7 {
		t.Errorf("Some(7).Get() = %d,%v", v, ok)
	}

	// Some of an empty slice is present, unlike None.
	emptyList := Some([]int{})
	if !emptyList.IsSet() {
		t.Error("explicitly empty list reads as absent")
	}
}

func TestDottedIdentLast(t *testing.T) {
	var empty DottedIdent
	if _, ok := empty.Last(); ok {
		t.Error("Last on empty reported a component")
	}
	d := DottedIdent{NewIdent("a", token.Fake("t")), NewIdent("b", token.Fake("t"))}
	last, ok := d.Last()
	if !ok || last.Text != "b" {
		t.Errorf("Last = %q,%v, want b", last.Text, ok)
	}
}
