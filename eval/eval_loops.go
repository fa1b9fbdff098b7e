/*
File    : pixelscript/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// evalFor implements the C-style loop: one child scope for the whole
// loop (not one per iteration), so a name first bound in init is
// visible across cond/body/incr and shadows any outer binding of the
// same name for the loop's duration. There is no break/continue; the
// loop always runs to completion and returns false.
func (e *Evaluator) evalFor(n *parser.For, env *scope.Scope) (objects.Value, error) {
	loopScope := scope.New(env)

	if err := e.evalLoopInit(n.Init, loopScope); err != nil {
		return nil, err
	}

	for {
		cond, err := e.Eval(n.Cond, loopScope)
		if err != nil {
			return nil, err
		}
		if !objects.IsTruthy(cond) {
			break
		}
		if _, err := e.Eval(n.Body, loopScope); err != nil {
			return nil, err
		}
		if _, err := e.Eval(n.Incr, loopScope); err != nil {
			return nil, err
		}
	}
	return objects.False, nil
}

// evalLoopInit binds init into loopScope directly rather than through
// the general Assign semantics. A loop's init scope is a binding site
// like a function parameter list: a name assigned there must land in
// the loop's own fresh scope even if an outer scope already binds it,
// so it shadows for the loop's duration and disappears after. Anything
// other than a plain "name = value" init (rare, but not forbidden) just
// evaluates normally.
func (e *Evaluator) evalLoopInit(init parser.Node, loopScope *scope.Scope) error {
	if assign, ok := init.(*parser.Assign); ok {
		if v, ok := assign.Target.(*parser.Var); ok {
			value, err := e.Eval(assign.Value, loopScope)
			if err != nil {
				return err
			}
			loopScope.Define(v.Name, value)
			return nil
		}
	}
	_, err := e.Eval(init, loopScope)
	return err
}
