package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans widen to both",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span leaves outer unchanged",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other starts earlier",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 5, End: 12},
			expected: Span{File: 1, Start: 5, End: 20},
		},
		{
			name:     "different file ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "empty span absorbed",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 15, End: 15},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{File: 3, Start: 10, End: 50}
	if !outer.Contains(Span{File: 3, Start: 10, End: 50}) {
		t.Errorf("span must contain itself")
	}
	if !outer.Contains(Span{File: 3, Start: 20, End: 30}) {
		t.Errorf("span must contain inner range")
	}
	if outer.Contains(Span{File: 3, Start: 5, End: 30}) {
		t.Errorf("span must not contain range starting before it")
	}
	if outer.Contains(Span{File: 4, Start: 20, End: 30}) {
		t.Errorf("span must not contain range from another file")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.src", []byte("alpha\nbeta\ngamma\n"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{
			name:  "first line",
			span:  Span{File: id, Start: 0, End: 5},
			start: LineCol{Line: 1, Col: 0},
			end:   LineCol{Line: 1, Col: 5},
		},
		{
			name:  "second line offset",
			span:  Span{File: id, Start: 6, End: 10},
			start: LineCol{Line: 2, Col: 0},
			end:   LineCol{Line: 2, Col: 4},
		},
		{
			name:  "span across lines",
			span:  Span{File: id, Start: 3, End: 13},
			start: LineCol{Line: 1, Col: 3},
			end:   LineCol{Line: 3, Col: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve() = %v..%v, want %v..%v", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.src", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	if got := f.GetLine(1); got != "one" {
		t.Errorf("line 1 = %q, want %q", got, "one")
	}
	if got := f.GetLine(3); got != "three" {
		t.Errorf("line 3 = %q, want %q", got, "three")
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0 = %q, want empty", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("line 9 = %q, want empty", got)
	}
}
