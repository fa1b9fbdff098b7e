/*
File    : pixelscript/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a lexer.Lexer's token stream into a single AST,
// then the eval package walks that AST directly. Unlike a general-purpose
// language with dozens of node shapes, pixelscript's grammar is small
// enough that the AST is expressed as one tagged union (a Node interface
// with exactly eleven concrete implementations) rather than the
// visitor-per-node-type hierarchy a larger language needs -- the
// evaluator dispatches with a single type switch instead.
package parser

import "github.com/akashmaji946/pixelscript/lexer"

// Node is the base type every AST node implements. Pos reports where in
// the source the node began, for runtime error messages.
type Node interface {
	Pos() lexer.Position
	node()
}

// base carries the position every node needs and supplies the
// unexported node() method that seals the Node interface to this
// package's eleven variants.
type base struct {
	pos lexer.Position
}

func (b base) Pos() lexer.Position { return b.pos }
func (base) node()                 {}

// Num is an integer or floating-point literal.
type Num struct {
	base
	IsFloat bool
	IntVal  int64
	FltVal  float64
}

// Bool is a boolean literal (true/false).
type Bool struct {
	base
	Value bool
}

// Var is a bare identifier reference.
type Var struct {
	base
	Name string
}

// Assign is `target = value`. Target must be a *Var or an *Index; the
// parser only ever produces Binary(op="=") and rewrites it to Assign
// during construction (see maybeBinary), so no other Node type ever
// appears as Target.
type Assign struct {
	base
	Target Node
	Value  Node
}

// Binary is a non-assignment binary operator application.
type Binary struct {
	base
	Op    string
	Left  Node
	Right Node
}

// If is a conditional. Else is nil when the source omitted an else
// branch.
type If struct {
	base
	Cond Node
	Then Node
	Else Node
}

// Lambda is an anonymous function literal: parameters plus a body
// expression, not yet bound to any environment (that happens when the
// evaluator turns a Lambda node into a function.Closure).
type Lambda struct {
	base
	Params []string
	Body   Node
}

// Call is function application: Callee(Args...).
type Call struct {
	base
	Callee Node
	Args   []Node
}

// Index is subscripting: Receiver[Indices...]. Receiver is always a
// *Var in legal programs (in practice, always the identifier "pixels");
// the parser does not special-case this, the evaluator enforces it.
type Index struct {
	base
	Receiver Node
	Indices  []Node
}

// For is the C-style loop: for (Init; Cond; Incr) Body.
type For struct {
	base
	Init Node
	Cond Node
	Incr Node
	Body Node
}

// Prog is a sequence of statements; its value is that of the last one
// (or false, for an empty sequence).
type Prog struct {
	base
	Statements []Node
}
