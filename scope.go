// scope.go — the lexical scope chain (the S component), grounded on the
// teacher's Env{parent,table} shape in interpreter.go. Unlike the
// original Rust scope stack (scope.rs), which holds a Vec of
// Arc<Mutex<Scope>> frames and errors on re-declaration in the same
// scope, Env is a simple singly-linked chain of maps and Declare always
// succeeds, shadowing any existing binding of the same name in the same
// frame — this is an intentional divergence the language requires.
package seed

// Env is one lexical frame. parent is nil only for the global frame.
type Env struct {
	parent *Env
	table  map[string]Value
}

func NewGlobalEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// PushChild creates a new frame nested in e, used for blocks (if/while/
// for bodies) that share e's bindings but can shadow them.
func (e *Env) PushChild() *Env {
	return &Env{parent: e, table: make(map[string]Value)}
}

// Declare binds name to v in this frame. It always succeeds: a second
// Declare of the same name in the same frame simply shadows the first,
// per the language's shadow rule.
func (e *Env) Declare(name string, v Value) {
	e.table[name] = v
}

// Assign walks outward from e looking for the nearest frame that already
// binds name and overwrites it there. It returns false if name is
// undeclared in every enclosing frame, which the caller turns into a
// NotDefined runtime error.
func (e *Env) Assign(name string, v Value) bool {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.table[name]; ok {
			s.table[name] = v
			return true
		}
	}
	return false
}

// Lookup walks outward from e and returns the nearest binding of name.
func (e *Env) Lookup(name string) (Value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}
