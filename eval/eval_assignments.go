/*
File    : pixelscript/eval/eval_assignments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// evalAssign implements Assign semantics. Target is either a plain Var
// (ordinary rebinding) or a pixel write of the exact shape
// "pixels[x, y] = rgb(...)" -- anything else is an AssignTargetError.
func (e *Evaluator) evalAssign(n *parser.Assign, env *scope.Scope) (objects.Value, error) {
	switch target := n.Target.(type) {
	case *parser.Var:
		value, err := e.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Assign(target.Name, value)
		return value, nil
	case *parser.Index:
		return e.evalPixelWrite(n, target, env)
	default:
		return nil, newError(AssignTargetError, n.Pos(), "cannot assign to %T", n.Target)
	}
}

// evalPixelWrite enforces the syntactic shape a pixel-write assignment
// requires: the receiver must be the identifier "pixels", there must be
// exactly two indices, and the value must be a call to the builtin rgb
// -- checked by inspecting the AST rather than by a separate static
// pass, so the evaluator stays single-pass.
func (e *Evaluator) evalPixelWrite(n *parser.Assign, target *parser.Index, env *scope.Scope) (objects.Value, error) {
	receiver, ok := target.Receiver.(*parser.Var)
	if !ok || receiver.Name != "pixels" {
		return nil, newError(AssignTargetError, n.Pos(), "pixel writes must target the identifier pixels")
	}
	if len(target.Indices) != 2 {
		return nil, newError(AssignTargetError, n.Pos(), "pixel write requires exactly 2 indices, got %d", len(target.Indices))
	}
	call, ok := n.Value.(*parser.Call)
	if !ok {
		return nil, newError(AssignTargetError, n.Pos(), "pixel write value must be a call to rgb(...)")
	}
	callee, ok := call.Callee.(*parser.Var)
	if !ok || callee.Name != "rgb" {
		return nil, newError(AssignTargetError, n.Pos(), "pixel write value must call the built-in rgb(...)")
	}

	xv, err := e.Eval(target.Indices[0], env)
	if err != nil {
		return nil, err
	}
	yv, err := e.Eval(target.Indices[1], env)
	if err != nil {
		return nil, err
	}
	x, _, xok := asNumber(xv)
	y, _, yok := asNumber(yv)
	if !xok || !yok {
		return nil, newError(TypeError, n.Pos(), "pixel coordinates must be numeric")
	}

	colorVal, err := e.Eval(call, env)
	if err != nil {
		return nil, err
	}
	pixel, ok := colorVal.(*objects.Pixel)
	if !ok {
		return nil, newError(TypeError, n.Pos(), "rgb(...) did not produce a pixel")
	}

	if err := e.grid.Set(int(x), int(y), pixel.R, pixel.G, pixel.B); err != nil {
		return nil, newError(IndexError, n.Pos(), "%s", err)
	}
	return pixel, nil
}
