/*
File    : pixelscript/lexer/cursor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer converts pixelscript source text into a lazy stream of
// tokens. It is split into a byte-level Cursor (this file), the Token
// vocabulary (token.go), and the scanning rules themselves (lexer.go).
package lexer

import "fmt"

// Position identifies a single point in a source file for diagnostics.
// Line is 1-indexed, Column is 1-indexed; both describe the character
// that was about to be read when the position was captured.
type Position struct {
	Line   int
	Column int
}

// String renders a position the way every diagnostic in this package
// quotes it: "(line L, column C)".
func (p Position) String() string {
	return fmt.Sprintf("(line %d, column %d)", p.Line, p.Column)
}

// Cursor walks a source string one byte at a time, tracking line and
// column for error reporting. It has no lookahead of its own -- that is
// the Lexer's job, layered on top.
type Cursor struct {
	src    string
	pos    int
	line   int
	column int
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, pos: 0, line: 1, column: 0}
}

// Peek returns the current byte without consuming it, or 0 at end of
// input. pixelscript source is restricted to the ASCII subset the
// grammar actually uses (digits, letters, underscore, operator and
// punctuation characters), so a byte is all a single "character" needs
// to be.
func (c *Cursor) Peek() byte {
	if c.pos >= len(c.src) {
		return 0
	}
	return c.src[c.pos]
}

// Advance returns the current byte and moves the cursor forward by one,
// updating line/column bookkeeping. Calling Advance at EOF is safe and
// keeps returning 0.
func (c *Cursor) Advance() byte {
	ch := c.Peek()
	if ch == 0 {
		return 0
	}
	c.pos++
	if ch == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	return ch
}

// AtEOF reports whether the cursor has consumed the entire source.
func (c *Cursor) AtEOF() bool {
	return c.pos >= len(c.src)
}

// Pos captures the cursor's current position for attaching to a token
// or diagnostic.
func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.column + 1}
}
