package interp

import "github.com/basiclang/gobasic/internal/object"

// Environment is a variable scope: an uppercase-name-to-value map with an
// optional outer scope. Lookups walk outward on miss; writes always land
// in the innermost scope (§3 "Variable scope").
type Environment struct {
	vars  map[string]object.Value
	outer *Environment
}

// NewEnvironment creates a root scope with no outer.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]object.Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer, used for the
// single live DEF FN call frame (§3: "at most one nested scope is live").
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), outer: outer}
}

// Get looks up name in this scope, then each outer scope in turn.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Set writes name in this (innermost) scope, regardless of whether an
// outer scope also defines it.
func (e *Environment) Set(name string, val object.Value) {
	e.vars[name] = val
}

// Clear removes every binding from this scope, leaving the outer chain
// (if any) untouched.
func (e *Environment) Clear() {
	e.vars = make(map[string]object.Value)
}
