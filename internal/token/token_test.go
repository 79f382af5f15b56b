package token

import (
	"testing"

	"uast/internal/source"
)

func TestRealAndFakeAreDisjoint(t *testing.T) {
	real := Real(Loc{File: 1, Offset: 0, Line: 1, Col: 0, Text: "x"})
	fake := Fake("implicit-block-open")

	if real.IsSynthetic() {
		t.Fatalf("real token reported synthetic")
	}
	if !fake.IsSynthetic() {
		t.Fatalf("fake token reported real")
	}
	if _, ok := fake.Location(); ok {
		t.Fatalf("fake token yielded a location")
	}
	// A real token at offset 0, line 1, col 0 must stay distinguishable
	// from any synthetic token.
	if real == fake {
		t.Fatalf("real zero-coordinate token equals a synthetic token")
	}
}

func TestLocSpan(t *testing.T) {
	tests := []struct {
		name     string
		loc      Loc
		expected source.Span
	}{
		{
			name:     "single char",
			loc:      Loc{File: 2, Offset: 10, Line: 2, Col: 3, Text: "x"},
			expected: source.Span{File: 2, Start: 10, End: 11},
		},
		{
			name:     "multibyte text",
			loc:      Loc{File: 2, Offset: 4, Line: 1, Col: 4, Text: "héllo"},
			expected: source.Span{File: 2, Start: 4, End: 10},
		},
		{
			name:     "empty text",
			loc:      Loc{File: 0, Offset: 0, Line: 1, Col: 0, Text: ""},
			expected: source.Span{File: 0, Start: 0, End: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.Span(); got != tt.expected {
				t.Errorf("Span() = %v, want %v", got, tt.expected)
			}
		})
	}
}
