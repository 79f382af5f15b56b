package symbols

import "testing"

func TestGenNeverReusesIDs(t *testing.T) {
	var gen Gen
	seen := make(map[SymbolID]bool)
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		if !id.IsValid() {
			t.Fatalf("Next() returned invalid id at step %d", i)
		}
		if seen[id] {
			t.Fatalf("id %d handed out twice", id)
		}
		seen[id] = true
	}
}

func TestScopeSharedBinding(t *testing.T) {
	var gen Gen
	scope := NewScope()

	// let x = ...; x; x — all three occurrences share one id.
	bound := scope.Bind("x", &gen)
	use1, ok := scope.Lookup("x")
	if !ok || use1 != bound {
		t.Fatalf("first use resolved to %d, want %d", use1, bound)
	}
	use2, _ := scope.Lookup("x")
	if use2 != bound {
		t.Fatalf("second use resolved to %d, want %d", use2, bound)
	}
}

func TestScopeShadowing(t *testing.T) {
	var gen Gen
	outer := NewScope()
	outerX := outer.Bind("x", &gen)

	// A lambda body shadowing x gets its own id.
	inner := outer.Push()
	innerX := inner.Bind("x", &gen)
	if innerX == outerX {
		t.Fatalf("shadowing binding reused outer id %d", outerX)
	}
	got, _ := inner.Lookup("x")
	if got != innerX {
		t.Fatalf("inner lookup = %d, want shadowing id %d", got, innerX)
	}

	// Leaving the lambda restores the outer binding.
	back := inner.Pop()
	got, _ = back.Lookup("x")
	if got != outerX {
		t.Fatalf("outer lookup after pop = %d, want %d", got, outerX)
	}
}

func TestScopeLookupMiss(t *testing.T) {
	scope := NewScope()
	if id, ok := scope.Lookup("missing"); ok || id != NoSymbolID {
		t.Fatalf("Lookup(missing) = %d,%v, want NoSymbolID,false", id, ok)
	}
}
