package diag

import "fmt"

// Pos is a point in a file. Offset and Col are 0-based bytes, Line is
// 1-based.
type Pos struct {
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line"`
	Col    uint32 `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Range is a half-open [Start, End) region of one file. File is an opaque
// id assigned by whoever produced the diagnostic.
type Range struct {
	File  uint32 `json:"file"`
	Start Pos    `json:"start"`
	End   Pos    `json:"end"`
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%s-%s", r.File, r.Start, r.End)
}

// Note is a secondary location attached to a diagnostic.
type Note struct {
	Range Range  `json:"range"`
	Msg   string `json:"msg"`
}

// Diagnostic is one report: what went wrong, how bad, and where.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Primary  Range    `json:"primary"`
	Notes    []Note   `json:"notes,omitempty"`
}

// Skipped records regions a producer gave up on while still emitting a
// usable result; partial success carries both a tree and its skip list.
type Skipped []Range
