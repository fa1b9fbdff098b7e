/*
File    : pixelscript/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// evalIf: evaluate cond; if truthy evaluate then; else evaluate else if
// present; else return false. No new scope is introduced -- If shares
// env with its caller.
func (e *Evaluator) evalIf(n *parser.If, env *scope.Scope) (objects.Value, error) {
	cond, err := e.Eval(n.Cond, env)
	if err != nil {
		return nil, err
	}
	if objects.IsTruthy(cond) {
		return e.Eval(n.Then, env)
	}
	if n.Else != nil {
		return e.Eval(n.Else, env)
	}
	return objects.False, nil
}
