package generate

import "github.com/llir/llvm/ir/value"

// Scope is one frame of the lexical environment: a mapping from names to
// lowered values together with a link to the enclosing frame.  The module
// scope is the root frame; each function body is lowered in a fresh child
// frame layered over it.  Discarding the child frame restores the enclosing
// scope exactly, so there is no unbind discipline for callers to get wrong,
// and independent function bodies may be lowered concurrently since each owns
// its frame and the module frame is read-only by then.
type Scope struct {
	parent  *Scope
	symbols map[string]value.Value
}

// NewScope creates a new scope frame enclosed by parent.  A nil parent
// creates a root frame.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:  parent,
		symbols: make(map[string]value.Value),
	}
}

// Define binds a name to a value in this frame, shadowing any binding of the
// same name in enclosing frames.  Redefining a name already bound in this
// frame silently overwrites it.
func (s *Scope) Define(name string, val value.Value) {
	s.symbols[name] = val
}

// Lookup resolves a name against this frame and its enclosing frames.  The
// innermost binding wins.
func (s *Scope) Lookup(name string) (value.Value, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if val, ok := frame.symbols[name]; ok {
			return val, true
		}
	}

	return nil, false
}
