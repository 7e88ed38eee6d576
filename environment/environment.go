/*
File    : shark/environment/environment.go

Package environment implements Shark's lexically-scoped frame chain
(spec.md §3.4). Grounded on the teacher's scope.Scope
(_examples/akashmaji946-go-mix/scope/scope.go): a bindings map plus a
parent pointer, with Lookup walking outward and Assign finding and
updating the nearest frame that already owns a name. Generalized down
from GoMix's four parallel maps (Variables/Consts/LetVars/LetTypes —
Shark has no const/let distinction) to a single binding map.
*/
package environment

import "github.com/danieldeazevedo/shark/value"

// Environment is one scope frame: a binding map plus a link to the
// enclosing frame. New frames are created at program start (global),
// function call, loop body, and conditional block, per spec.md §3.4.
type Environment struct {
	bindings map[string]value.Value
	parent   *Environment
}

// New creates a root frame with no parent (the global frame).
func New() *Environment {
	return &Environment{bindings: make(map[string]value.Value)}
}

// NewChild creates a frame whose parent is env — used for function
// calls (parent is the function's captured closure frame), loop
// bodies, and conditional blocks (parent is the enclosing frame).
func NewChild(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]value.Value), parent: parent}
}

// Lookup walks from this frame outward, returning the first binding
// found for name.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Bind creates or overwrites a binding in THIS frame only — the
// realization of `var x = expr`, which always shadows any outer
// binding rather than updating it.
func (e *Environment) Bind(name string, v value.Value) {
	e.bindings[name] = v
}

// Assign updates an existing binding in the nearest frame (walking
// outward from e) that already contains name, per spec.md §3.4's
// assignment rule. Returns false if no frame contains the name, which
// the evaluator turns into a NameError.
func (e *Environment) Assign(name string, v value.Value) bool {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name]; ok {
			frame.bindings[name] = v
			return true
		}
	}
	return false
}

// Snapshot returns a shallow copy of this frame's own binding map,
// directly modeled on the teacher's Scope.Copy() (used there for
// closure capture; repurposed here, per SPEC_FULL.md §5, for REPL
// per-statement rollback — the parent pointer is not touched, since a
// rolled-back statement never changes outer frames it didn't create).
func (e *Environment) Snapshot() map[string]value.Value {
	cp := make(map[string]value.Value, len(e.bindings))
	for k, v := range e.bindings {
		cp[k] = v
	}
	return cp
}

// Restore replaces this frame's binding map wholesale with a
// previously taken Snapshot, discarding any bindings or rebindings
// made since — the rollback half of spec.md §5's REPL isolation
// requirement.
func (e *Environment) Restore(snapshot map[string]value.Value) {
	e.bindings = snapshot
}
