/*
File    : pixelscript/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/pixelscript/lexer"
)

// Error is a parse-time failure: an unexpected token, a missing
// delimiter, or an expected-identifier-got-something-else mismatch.
// Parsing stops at the first Error -- all errors are fatal to the
// current run, there is no error-collecting pass here.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
