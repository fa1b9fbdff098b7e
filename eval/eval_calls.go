/*
File    : pixelscript/eval/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pixelscript/builtins"
	"github.com/akashmaji946/pixelscript/function"
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// evalLambda constructs a closure capturing env by reference, without
// evaluating the body -- the body only runs when the closure is called.
func (e *Evaluator) evalLambda(n *parser.Lambda, env *scope.Scope) objects.Value {
	return &function.Closure{Params: n.Params, Body: n.Body, Env: env}
}

// evalCall evaluates the callee, then the arguments left to right, then
// invokes whichever callable the callee produced -- a user closure or a
// host native.
func (e *Evaluator) evalCall(n *parser.Call, env *scope.Scope) (objects.Value, error) {
	callee, err := e.Eval(n.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(n.Args))
	for i, argNode := range n.Args {
		v, err := e.Eval(argNode, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.Closure:
		return e.callClosure(fn, args)
	case *builtins.Native:
		v, err := fn.Fn(e, args)
		if err != nil {
			return nil, wrapBuiltinErr(n.Pos(), err)
		}
		return v, nil
	default:
		return nil, newError(TypeError, n.Pos(), "%s is not callable", callee.Type())
	}
}

// callClosure binds declared parameters to the supplied arguments in a
// fresh child scope of the closure's captured environment: missing
// trailing arguments bind to false, extra arguments are silently
// ignored -- user lambdas never raise ArityError.
func (e *Evaluator) callClosure(fn *function.Closure, args []objects.Value) (objects.Value, error) {
	callScope := scope.New(fn.Env)
	for i, param := range fn.Params {
		if i < len(args) {
			callScope.Define(param, args[i])
		} else {
			callScope.Define(param, objects.False)
		}
	}
	return e.Eval(fn.Body, callScope)
}

// evalIndex evaluates a bare "pixels[x, y]" read (as opposed to the
// assignment form eval_assignments.go handles). The receiver must
// resolve to the grid handle and there must be exactly two indices.
func (e *Evaluator) evalIndex(n *parser.Index, env *scope.Scope) (objects.Value, error) {
	recv, err := e.Eval(n.Receiver, env)
	if err != nil {
		return nil, err
	}
	grid, ok := recv.(*objects.GridHandle)
	if !ok {
		return nil, newError(TypeError, n.Pos(), "%s is not indexable", recv.Type())
	}
	if len(n.Indices) != 2 {
		return nil, newError(TypeError, n.Pos(), "pixel index requires exactly 2 indices, got %d", len(n.Indices))
	}

	xv, err := e.Eval(n.Indices[0], env)
	if err != nil {
		return nil, err
	}
	yv, err := e.Eval(n.Indices[1], env)
	if err != nil {
		return nil, err
	}
	x, _, xok := asNumber(xv)
	y, _, yok := asNumber(yv)
	if !xok || !yok {
		return nil, newError(TypeError, n.Pos(), "pixel coordinates must be numeric")
	}

	r, g, b, err := grid.Grid.At(int(x), int(y))
	if err != nil {
		return nil, newError(IndexError, n.Pos(), "%s", err)
	}
	return &objects.Pixel{R: r, G: g, B: b}, nil
}

// evalProg evaluates statements in order, returning the last value or
// false if empty. A single-statement Prog is equivalent to evaluating
// that statement bare, though the parser already unwraps
// single-statement blocks before a Prog node is ever built.
func (e *Evaluator) evalProg(n *parser.Prog, env *scope.Scope) (objects.Value, error) {
	if len(n.Statements) == 0 {
		return objects.False, nil
	}
	var result objects.Value
	for _, stmt := range n.Statements {
		v, err := e.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
