/*
File    : pixelscript/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the Closure value the evaluator produces for
// every Lambda node it evaluates.
package function

import (
	"fmt"

	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// Closure pairs a lambda's parameters and body with the environment it
// was evaluated in. Env is captured by reference, not copied: if the
// defining scope is later mutated -- for instance because the closure
// assigned itself to a name in that scope, enabling self-recursion --
// every holder of the closure sees the mutation, because every holder
// shares the same *scope.Scope.
type Closure struct {
	Params []string
	Body   parser.Node
	Env    *scope.Scope
}

func (c *Closure) Type() objects.ValueType { return objects.ClosureType }

func (c *Closure) String() string {
	return fmt.Sprintf("<lambda/%d>", len(c.Params))
}
