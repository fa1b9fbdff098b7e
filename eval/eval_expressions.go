/*
File    : pixelscript/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/parser"
	"github.com/akashmaji946/pixelscript/scope"
)

// evalNum turns a literal Num node into an Integer or Float value.
func evalNum(n *parser.Num) objects.Value {
	if n.IsFloat {
		return &objects.Float{Value: n.FltVal}
	}
	return &objects.Integer{Value: n.IntVal}
}

// evalVar looks the name up the scope chain, failing with NameError if
// nothing binds it.
func (e *Evaluator) evalVar(n *parser.Var, env *scope.Scope) (objects.Value, error) {
	v, ok := env.Lookup(n.Name)
	if !ok {
		return nil, newError(NameError, n.Pos(), "unbound name %q", n.Name)
	}
	return v, nil
}

// asNumber reads an Integer or Float as a float64, reporting whether v
// held an integer (so callers can decide the result's numeric type).
func asNumber(v objects.Value) (f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case *objects.Integer:
		return float64(n.Value), true, true
	case *objects.Float:
		return n.Value, false, true
	default:
		return 0, false, false
	}
}

// evalBinary evaluates both operands (left to right) and applies op.
// && and || short-circuit and never evaluate the right operand that
// isn't needed, so they evaluate the left operand first and may return
// before touching the right.
func (e *Evaluator) evalBinary(n *parser.Binary, env *scope.Scope) (objects.Value, error) {
	if n.Op == "&&" || n.Op == "||" {
		left, err := e.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		truthy := objects.IsTruthy(left)
		if n.Op == "&&" && !truthy {
			return left, nil
		}
		if n.Op == "||" && truthy {
			return left, nil
		}
		return e.Eval(n.Right, env)
	}

	left, err := e.Eval(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "+", "-", "*", "/", "//", "%":
		return e.evalArith(n, left, right)
	case "<", ">", "<=", ">=":
		return e.evalOrderComparison(n, left, right)
	case "==", "!=":
		return evalEquality(n.Op, left, right), nil
	default:
		return nil, newError(TypeError, n.Pos(), "unknown operator %q", n.Op)
	}
}

// evalArith implements +, -, *, /, //, %: / is true division and always
// produces a float; // and % require a nonzero divisor; + - * produce
// an Integer when both operands are Integer, otherwise a Float.
func (e *Evaluator) evalArith(n *parser.Binary, left, right objects.Value) (objects.Value, error) {
	lf, lInt, lok := asNumber(left)
	rf, rInt, rok := asNumber(right)
	if !lok || !rok {
		return nil, newError(TypeError, n.Pos(), "operator %q requires numeric operands", n.Op)
	}
	bothInt := lInt && rInt

	switch n.Op {
	case "+":
		if bothInt {
			return &objects.Integer{Value: int64(lf) + int64(rf)}, nil
		}
		return &objects.Float{Value: lf + rf}, nil
	case "-":
		if bothInt {
			return &objects.Integer{Value: int64(lf) - int64(rf)}, nil
		}
		return &objects.Float{Value: lf - rf}, nil
	case "*":
		if bothInt {
			return &objects.Integer{Value: int64(lf) * int64(rf)}, nil
		}
		return &objects.Float{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, newError(DivisionByZero, n.Pos(), "division by zero")
		}
		return &objects.Float{Value: lf / rf}, nil
	case "//":
		if rf == 0 {
			return nil, newError(DivisionByZero, n.Pos(), "floor division by zero")
		}
		floor := math.Floor(lf / rf)
		if bothInt {
			return &objects.Integer{Value: int64(floor)}, nil
		}
		return &objects.Float{Value: floor}, nil
	case "%":
		if rf == 0 {
			return nil, newError(DivisionByZero, n.Pos(), "modulo by zero")
		}
		if bothInt {
			return &objects.Integer{Value: int64(lf) % int64(rf)}, nil
		}
		return &objects.Float{Value: math.Mod(lf, rf)}, nil
	default:
		return nil, newError(TypeError, n.Pos(), "unknown arithmetic operator %q", n.Op)
	}
}

// evalOrderComparison implements <, >, <=, >=: numeric only.
func (e *Evaluator) evalOrderComparison(n *parser.Binary, left, right objects.Value) (objects.Value, error) {
	lf, _, lok := asNumber(left)
	rf, _, rok := asNumber(right)
	if !lok || !rok {
		return nil, newError(TypeError, n.Pos(), "operator %q requires numeric operands", n.Op)
	}
	switch n.Op {
	case "<":
		return objects.Bool(lf < rf), nil
	case ">":
		return objects.Bool(lf > rf), nil
	case "<=":
		return objects.Bool(lf <= rf), nil
	case ">=":
		return objects.Bool(lf >= rf), nil
	default:
		return objects.False, nil
	}
}

// evalEquality implements == and !=, extended to numbers, booleans, and
// pixel triples. Values of different kinds (other
// than Integer/Float, which compare numerically against each other) are
// simply unequal.
func evalEquality(op string, left, right objects.Value) objects.Value {
	eq := valuesEqual(left, right)
	if op == "!=" {
		eq = !eq
	}
	return objects.Bool(eq)
}

func valuesEqual(left, right objects.Value) bool {
	if lf, _, lok := asNumber(left); lok {
		if rf, _, rok := asNumber(right); rok {
			return lf == rf
		}
		return false
	}
	switch l := left.(type) {
	case *objects.Boolean:
		r, ok := right.(*objects.Boolean)
		return ok && l.Value == r.Value
	case *objects.Pixel:
		r, ok := right.(*objects.Pixel)
		return ok && l.Equal(r)
	default:
		return false
	}
}
