/*
File    : pixelscript/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the Value interface and the runtime value
// types pixelscript programs can produce and hold: integer,
// floating-point, boolean, a 3-tuple of bytes (a pixel), a mutable
// pixel-grid handle, and a read-only snapshot handle. The callable
// values implement Value elsewhere: closures in package function, host
// builtins in package builtins. There is no string type, no
// user-defined type, and no collection type.
package objects

import "fmt"

// ValueType identifies the runtime type of a Value, used for type
// checking in the evaluator's operator and builtin implementations.
type ValueType string

const (
	IntegerType  ValueType = "int"
	FloatType    ValueType = "float"
	BooleanType  ValueType = "bool"
	PixelType    ValueType = "pixel"
	GridType     ValueType = "pixels"
	RefType      ValueType = "ref"
	ClosureType  ValueType = "closure"
	NativeType   ValueType = "native"
)

// note: the Native callable Value lives in the builtins package (see
// builtins.Native), not here -- it needs a Runtime parameter to reach
// the grid and root scope, and plumbing that type through this package
// would require objects to depend on scope, which scope already depends
// on objects for. Keeping the callable's shape out of this package
// avoids that cycle; any type implementing Type()/String() satisfies
// Value regardless of which package defines it.

// Value is the interface every pixelscript runtime value implements.
type Value interface {
	Type() ValueType
	String() string
}

// Integer is a 64-bit signed integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Type() ValueType { return IntegerType }
func (i *Integer) String() string  { return fmt.Sprintf("%d", i.Value) }

// Float is a 64-bit floating-point value.
type Float struct {
	Value float64
}

func (f *Float) Type() ValueType { return FloatType }
func (f *Float) String() string  { return fmt.Sprintf("%g", f.Value) }

// Boolean is pixelscript's only falsy/truthy distinction: everything
// except Boolean{false} is truthy.
type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ValueType { return BooleanType }
func (b *Boolean) String() string  { return fmt.Sprintf("%t", b.Value) }

// False is the single canonical falsy value; the evaluator returns it
// wherever a default "false" result is needed (empty Prog, missing
// else branch, a For loop's result).
var False = &Boolean{Value: false}

// True is the canonical truthy boolean literal.
var True = &Boolean{Value: true}

// Bool returns True or False for a native bool, avoiding an allocation
// per call site.
func Bool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Pixel is a 3-tuple of bytes: the value rgb(r, g, b) produces and the
// value pixels[x, y] reads back.
type Pixel struct {
	R, G, B byte
}

func (p *Pixel) Type() ValueType { return PixelType }
func (p *Pixel) String() string  { return fmt.Sprintf("rgb(%d, %d, %d)", p.R, p.G, p.B) }

// Equal reports structural equality, used by the == / != operators,
// which apply to triples as well as numbers and booleans.
func (p *Pixel) Equal(o *Pixel) bool {
	return p.R == o.R && p.G == o.G && p.B == o.B
}

// IsTruthy implements the truthiness rule: only Boolean{false} is falsy,
// everything else -- including zero, 0.0, and Pixel{0,0,0} -- is truthy.
func IsTruthy(v Value) bool {
	b, ok := v.(*Boolean)
	return !ok || b.Value
}

