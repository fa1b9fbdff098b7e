/*
File    : pixelscript/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements pixelscript's lexical environment: a
// name-to-value mapping (a Go map, so bindings keep no insertion order)
// with a parent-pointer chain. There is exactly
// one binding form -- no const/let distinction -- since the language
// has no separate declaration syntax.
package scope

import "github.com/akashmaji946/pixelscript/objects"

// Scope is one lexical scope. A nil Parent marks the root scope, which
// the host pre-populates with image bindings and builtins before any
// user code runs.
type Scope struct {
	values map[string]objects.Value
	Parent *Scope
}

// New creates a child scope of parent (nil for a root scope).
func New(parent *Scope) *Scope {
	return &Scope{values: make(map[string]objects.Value), Parent: parent}
}

// Lookup walks the scope chain from this scope outward, returning the
// first binding found for name.
func (s *Scope) Lookup(name string) (objects.Value, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// Define binds name to value in this scope only, shadowing any binding
// of the same name in an outer scope. Used for function parameters and
// the for-loop's init binding.
func (s *Scope) Define(name string, value objects.Value) {
	s.values[name] = value
}

// Assign writes value to the innermost scope in the chain that already
// binds name. If no scope in the chain binds it, pixelscript has no
// separate declaration syntax, so Assign falls back to defining it in
// the innermost scope -- this scope, the one Assign was called on.
func (s *Scope) Assign(name string, value objects.Value) {
	for sc := s; sc != nil; sc = sc.Parent {
		if _, ok := sc.values[name]; ok {
			sc.values[name] = value
			return
		}
	}
	s.values[name] = value
}

// Root walks to the outermost scope in the chain. loadColor/loadRef do
// not go through it: they write their r/g/b bindings into the root
// environment via the evaluator's DefineInRoot.
func (s *Scope) Root() *Scope {
	sc := s
	for sc.Parent != nil {
		sc = sc.Parent
	}
	return sc
}
