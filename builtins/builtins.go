/*
File    : pixelscript/builtins/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"fmt"
	"math"

	"github.com/akashmaji946/pixelscript/objects"
)

// ArityError and TypeError are the two failure shapes a builtin can
// report; eval translates them into the matching error Kind (ArityError,
// TypeError) without builtins needing to know about eval's error
// representation.
type ArityError struct{ Msg string }

func (e *ArityError) Error() string { return e.Msg }

type TypeError struct{ Msg string }

func (e *TypeError) Error() string { return e.Msg }

// Table lists every host builtin bound into the root environment.
var Table = []*Native{
	{Name: "rgb", Fn: rgbFn, Arity: 3},
	{Name: "loadColor", Fn: loadColorFn, Arity: 2},
	{Name: "makeRef", Fn: makeRefFn, Arity: 0},
	{Name: "loadRef", Fn: loadRefFn, Arity: 2},
	{Name: "sqrt", Fn: sqrtFn, Arity: 1},
}

// numberValue reads an Integer or Float as a float64, for builtins that
// accept either.
func numberValue(v objects.Value) (float64, bool) {
	switch n := v.(type) {
	case *objects.Integer:
		return float64(n.Value), true
	case *objects.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// clampByte truncates f to an integer and clamps it into [0, 255], per
// rgb()'s contract.
func clampByte(f float64) byte {
	i := int64(f)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return byte(i)
}

// rgbFn implements rgb(r, g, b): clamp each channel to [0, 255] after
// truncation to integer, returning a Pixel.
func rgbFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, &ArityError{Msg: fmt.Sprintf("rgb expects 3 arguments, got %d", len(args))}
	}
	var channels [3]byte
	for i, a := range args {
		n, ok := numberValue(a)
		if !ok {
			return nil, &TypeError{Msg: fmt.Sprintf("rgb argument %d must be numeric", i+1)}
		}
		channels[i] = clampByte(n)
	}
	return &objects.Pixel{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// loadColorFn implements loadColor(x, y): read pixels[x, y] and bind r,
// g, b in the root environment, a deliberately non-lexical contract.
// Returns false.
func loadColorFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Msg: fmt.Sprintf("loadColor expects 2 arguments, got %d", len(args))}
	}
	x, y, err := intXY(args)
	if err != nil {
		return nil, err
	}
	r, g, b, gridErr := rt.Grid().At(x, y)
	if gridErr != nil {
		return nil, gridErr
	}
	rt.DefineInRoot("r", &objects.Integer{Value: int64(r)})
	rt.DefineInRoot("g", &objects.Integer{Value: int64(g)})
	rt.DefineInRoot("b", &objects.Integer{Value: int64(b)})
	return objects.False, nil
}

// makeRefFn implements makeRef(): capture a read-only snapshot of pixels
// as it stands right now.
func makeRefFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, &ArityError{Msg: fmt.Sprintf("makeRef expects 0 arguments, got %d", len(args))}
	}
	snap := rt.Grid().Snapshot()
	rt.SetRef(snap)
	return &objects.RefHandle{Grid: snap}, nil
}

// loadRefFn implements loadRef(x, y): like loadColor, but reads from the
// snapshot captured by makeRef. Errors if no snapshot exists.
func loadRefFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, &ArityError{Msg: fmt.Sprintf("loadRef expects 2 arguments, got %d", len(args))}
	}
	ref, ok := rt.Ref()
	if !ok {
		return nil, &TypeError{Msg: "loadRef called before makeRef: no snapshot exists"}
	}
	x, y, err := intXY(args)
	if err != nil {
		return nil, err
	}
	r, g, b, gridErr := ref.At(x, y)
	if gridErr != nil {
		return nil, gridErr
	}
	rt.DefineInRoot("r", &objects.Integer{Value: int64(r)})
	rt.DefineInRoot("g", &objects.Integer{Value: int64(g)})
	rt.DefineInRoot("b", &objects.Integer{Value: int64(b)})
	return objects.False, nil
}

// sqrtFn implements sqrt(x): floating-point square root.
func sqrtFn(rt Runtime, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, &ArityError{Msg: fmt.Sprintf("sqrt expects 1 argument, got %d", len(args))}
	}
	n, ok := numberValue(args[0])
	if !ok {
		return nil, &TypeError{Msg: "sqrt argument must be numeric"}
	}
	return &objects.Float{Value: math.Sqrt(n)}, nil
}

// intXY extracts integer x, y coordinates from a two-argument call,
// truncating floats the way rgb() truncates channels.
func intXY(args []objects.Value) (int, int, error) {
	xf, ok := numberValue(args[0])
	if !ok {
		return 0, 0, &TypeError{Msg: "x coordinate must be numeric"}
	}
	yf, ok := numberValue(args[1])
	if !ok {
		return 0, 0, &TypeError{Msg: "y coordinate must be numeric"}
	}
	return int(xf), int(yf), nil
}
