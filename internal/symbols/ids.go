package symbols

import "sync/atomic"

// SymbolID identifies one binding. Every identifier occurrence denoting
// the same binding shares one id; ids are never reused within a process.
type SymbolID uint64

const (
	// NoSymbolID marks the absence of a symbol reference.
	NoSymbolID SymbolID = 0
)

// IsValid reports whether the id refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// Gen hands out process-unique symbol ids. The zero value is ready to use
// and safe for concurrent callers.
type Gen struct {
	n atomic.Uint64
}

// Next allocates a fresh id. The first id is 1; 0 stays reserved for
// NoSymbolID.
func (g *Gen) Next() SymbolID {
	return SymbolID(g.n.Add(1))
}
