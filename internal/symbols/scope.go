package symbols

// Scope is one lexical binding frame. Front ends push a scope per block,
// lambda, or function body while assigning symbol ids, so that shadowing
// yields a distinct id and every occurrence of one binding resolves to the
// same id.
type Scope struct {
	parent   *Scope
	bindings map[string]SymbolID
}

// NewScope creates a root scope.
func NewScope() *Scope {
	return &Scope{bindings: make(map[string]SymbolID)}
}

// Push opens a nested scope.
func (s *Scope) Push() *Scope {
	return &Scope{parent: s, bindings: make(map[string]SymbolID)}
}

// Pop returns the enclosing scope, or nil at the root.
func (s *Scope) Pop() *Scope {
	return s.parent
}

// Bind allocates a fresh id for name in this scope, shadowing any outer
// binding of the same name.
func (s *Scope) Bind(name string, gen *Gen) SymbolID {
	id := gen.Next()
	s.bindings[name] = id
	return id
}

// Lookup finds the innermost binding of name.
func (s *Scope) Lookup(name string) (SymbolID, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if id, ok := cur.bindings[name]; ok {
			return id, true
		}
	}
	return NoSymbolID, false
}
