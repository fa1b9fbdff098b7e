/*
File    : pixelscript/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pixelscript/builtins"
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/pixel"
	"github.com/akashmaji946/pixelscript/scope"
)

// Evaluator walks a parser.Prog against a scope chain rooted at root,
// reading and writing grid in place. It implements builtins.Runtime so
// the five host bindings can reach the grid and the root scope without
// the builtins package ever importing eval.
type Evaluator struct {
	root *scope.Scope
	grid *pixel.Grid
	ref  *pixel.Grid

	steps      int
	stepBudget int // 0 means unbounded; set with SetStepBudget
}

// NewEvaluator builds a root scope pre-populated with pixels, width,
// height, and the host builtins.
func NewEvaluator(grid *pixel.Grid) *Evaluator {
	e := &Evaluator{root: scope.New(nil), grid: grid}
	e.root.Define("pixels", &objects.GridHandle{Grid: grid})
	e.root.Define("width", &objects.Integer{Value: int64(grid.Width)})
	e.root.Define("height", &objects.Integer{Value: int64(grid.Height)})
	for _, native := range builtins.Table {
		e.root.Define(native.Name, native)
	}
	return e
}

// SetStepBudget bounds the number of AST nodes Eval will visit before
// failing with BudgetExceeded. Zero (the default) means unbounded; this
// is an optional host-side timeout.
func (e *Evaluator) SetStepBudget(n int) { e.stepBudget = n }

// RootScope exposes the pre-populated root scope, mainly for hosts (the
// REPL) that want to inspect or extend bindings between runs.
func (e *Evaluator) RootScope() *scope.Scope { return e.root }

// Grid implements builtins.Runtime.
func (e *Evaluator) Grid() *pixel.Grid { return e.grid }

// Ref implements builtins.Runtime.
func (e *Evaluator) Ref() (*pixel.Grid, bool) {
	if e.ref == nil {
		return nil, false
	}
	return e.ref, true
}

// SetRef implements builtins.Runtime.
func (e *Evaluator) SetRef(g *pixel.Grid) { e.ref = g }

// DefineInRoot implements builtins.Runtime: loadColor/loadRef bind r, g,
// b here rather than in the caller's lexical scope, a documented, not
// accidental, part of their contract.
func (e *Evaluator) DefineInRoot(name string, v objects.Value) { e.root.Define(name, v) }

// Run parses src and evaluates it against the root scope in one call --
// the host -> core "run(text)" contract.
func (e *Evaluator) Run(src string) (objects.Value, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, wrapFrontendErr(err)
	}
	return e.Eval(prog, e.root)
}

// Eval dispatches on n's concrete type and evaluates it in env.
// Sub-expressions are visited strictly left to right wherever order is
// observable (argument lists, binary operands, Prog statements, For's
// init/cond/body/incr).
func (e *Evaluator) Eval(n parser.Node, env *scope.Scope) (objects.Value, error) {
	if e.stepBudget > 0 {
		e.steps++
		if e.steps > e.stepBudget {
			return nil, newError(BudgetExceeded, n.Pos(), "step budget of %d exceeded", e.stepBudget)
		}
	}

	switch node := n.(type) {
	case *parser.Num:
		return evalNum(node), nil
	case *parser.Bool:
		return objects.Bool(node.Value), nil
	case *parser.Var:
		return e.evalVar(node, env)
	case *parser.Assign:
		return e.evalAssign(node, env)
	case *parser.Binary:
		return e.evalBinary(node, env)
	case *parser.If:
		return e.evalIf(node, env)
	case *parser.Lambda:
		return e.evalLambda(node, env), nil
	case *parser.Call:
		return e.evalCall(node, env)
	case *parser.Index:
		return e.evalIndex(node, env)
	case *parser.For:
		return e.evalFor(node, env)
	case *parser.Prog:
		return e.evalProg(node, env)
	default:
		return nil, newError(TypeError, n.Pos(), "unknown AST node %T", n)
	}
}
