/*
File    : pixelscript/builtins/runtime.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtins implements the host bindings pre-populated into the
// root environment: rgb, loadColor, makeRef, loadRef, and sqrt.
// A Runtime interface stands in for the evaluator, so builtins never has
// to import eval and the two packages don't form a cycle.
package builtins

import (
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/pixel"
)

// Runtime is the slice of evaluator state a builtin needs: the mutable
// grid, the current read-only snapshot (if any), and a way to write
// directly into the root environment (loadColor/loadRef's documented
// not-lexically-scoped contract).
type Runtime interface {
	Grid() *pixel.Grid
	Ref() (*pixel.Grid, bool)
	SetRef(*pixel.Grid)
	DefineInRoot(name string, v objects.Value)
}

// NativeFunc is the signature every builtin implements.
type NativeFunc func(rt Runtime, args []objects.Value) (objects.Value, error)

// Native wraps a NativeFunc as a callable objects.Value.
type Native struct {
	Name  string
	Fn    NativeFunc
	Arity int // exact argument count, or -1 if variadic/checked by Fn itself
}

func (n *Native) Type() objects.ValueType { return objects.NativeType }
func (n *Native) String() string          { return "<native " + n.Name + ">" }
