package symbols

import (
	"fmt"
	"math"

	"ezc/internal/expr"
	"ezc/internal/types"
)

type scope struct {
	names map[string]expr.Identifier
	base  uint64 // frame offset at the moment the scope was opened
}

// Env is a stack of lexical scopes, innermost last.
//
// Names are unique inside one scope and may shadow names of outer scopes.
// Env also hands out storage offsets: identifiers declared through Declare
// are laid out one after another, and popping a scope releases its storage.
type Env struct {
	stack []scope
	next  uint64
}

// NewEnv returns an environment with no open scope.
func NewEnv() *Env {
	return &Env{}
}

// Len returns the number of open scopes.
func (e *Env) Len() int { return len(e.stack) }

// IsEmpty reports whether no scope is open.
func (e *Env) IsEmpty() bool { return len(e.stack) == 0 }

// Push opens a new innermost scope.
func (e *Env) Push() {
	e.stack = append(e.stack, scope{names: make(map[string]expr.Identifier), base: e.next})
}

// Pop discards the innermost scope. Popping an empty stack does nothing;
// callers keep Push and Pop balanced themselves.
func (e *Env) Pop() {
	if len(e.stack) == 0 {
		return
	}
	last := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.next = last.base
}

// Put binds name in the innermost scope, overwriting an earlier binding of
// the same scope. Without an open scope Put does nothing.
func (e *Env) Put(name string, id expr.Identifier) {
	if len(e.stack) == 0 {
		return
	}
	e.stack[len(e.stack)-1].names[name] = id
}

// Get resolves name from the innermost scope outwards.
func (e *Env) Get(name string) (expr.Identifier, bool) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if id, ok := e.stack[i].names[name]; ok {
			return id, true
		}
	}
	return expr.Identifier{}, false
}

// Local resolves name in the innermost scope only.
func (e *Env) Local(name string) (expr.Identifier, bool) {
	if len(e.stack) == 0 {
		return expr.Identifier{}, false
	}
	id, ok := e.stack[len(e.stack)-1].names[name]
	return id, ok
}

// FrameSize is the number of bytes reserved by all open scopes.
func (e *Env) FrameSize() uint64 { return e.next }

// Declare reserves storage for a new identifier of type typ and binds it in
// the innermost scope.
func (e *Env) Declare(name string, typ types.Type) (expr.Identifier, error) {
	if len(e.stack) == 0 {
		return expr.Identifier{}, fmt.Errorf("declare %q: no open scope", name)
	}
	width, ok := typ.CheckedWidth()
	if !ok {
		return expr.Identifier{}, fmt.Errorf("declare %q: %s does not fit in 64 bits", name, typ)
	}
	if width > math.MaxUint64-e.next {
		return expr.Identifier{}, fmt.Errorf("declare %q: frame size overflow", name)
	}
	id := expr.Identifier{Name: name, Typ: typ, Offset: e.next}
	e.next += width
	e.Put(name, id)
	return id, nil
}
