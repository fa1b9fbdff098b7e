/*
File    : pixelscript/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: it interprets a parser.Prog
// against a scope.Scope pre-populated with the pixel grid and host
// builtins.
package eval

import (
	"fmt"

	"github.com/akashmaji946/pixelscript/builtins"
	"github.com/akashmaji946/pixelscript/lexer"
	"github.com/akashmaji946/pixelscript/parser"
)

// Kind classifies a runtime or compile-time failure.
type Kind string

const (
	LexError          Kind = "LexError"
	ParseError        Kind = "ParseError"
	NameError         Kind = "NameError"
	TypeError         Kind = "TypeError"
	ArityError        Kind = "ArityError"
	IndexError        Kind = "IndexError"
	DivisionByZero    Kind = "DivisionByZero"
	AssignTargetError Kind = "AssignTargetError"

	// BudgetExceeded reports the optional step-budget timeout, an
	// opt-in host-side limit on evaluated AST nodes.
	BudgetExceeded Kind = "BudgetExceeded"
)

// Error is the structured failure surface: kind, source position, and
// message. Every run either completes or fails with exactly one Error
// -- there is no partial/collected-errors mode.
type Error struct {
	Kind Kind
	Pos  lexer.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.Pos, e.Msg)
}

func newError(kind Kind, pos lexer.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// wrapFrontendErr converts a lexer.Error or parser.Error -- surfaced
// before evaluation ever starts -- into the same Error shape runtime
// failures use, so callers only ever handle one error type.
func wrapFrontendErr(err error) *Error {
	switch e := err.(type) {
	case *lexer.Error:
		return &Error{Kind: LexError, Pos: e.Pos, Msg: e.Msg}
	case *parser.Error:
		return &Error{Kind: ParseError, Pos: e.Pos, Msg: e.Msg}
	default:
		return &Error{Kind: ParseError, Msg: err.Error()}
	}
}

// wrapBuiltinErr turns the failure shapes builtins.Native.Fn can return
// into the matching Error Kind at the call site's position, so a builtin
// package with no notion of source position still produces a correctly
// classified Error.
func wrapBuiltinErr(pos lexer.Position, err error) *Error {
	switch e := err.(type) {
	case *builtins.ArityError:
		return &Error{Kind: ArityError, Pos: pos, Msg: e.Msg}
	case *builtins.TypeError:
		return &Error{Kind: TypeError, Pos: pos, Msg: e.Msg}
	default:
		// grid bounds failures (pixel.Grid.At/Set) arrive as plain errors
		return &Error{Kind: IndexError, Pos: pos, Msg: err.Error()}
	}
}
