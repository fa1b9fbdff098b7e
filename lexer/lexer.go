/*
File    : pixelscript/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strconv"
)

// Error is a lex-time failure: an unrecognized character or a malformed
// operator run. It carries the position of the offending character so
// the host can report "(line L, column C): message" the way the rest of
// the pipeline does.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Lexer turns a Cursor's byte stream into Tokens. It keeps exactly one
// token of lookahead in peeked, filled lazily by Peek and drained by
// Next -- the "one-slot Option<Token> buffer" the design calls for.
type Lexer struct {
	cur    *Cursor
	peeked *Token
	err    *Error
}

// New creates a Lexer over the given program text.
func New(src string) *Lexer {
	return &Lexer{cur: NewCursor(src)}
}

// Peek returns the next token without consuming it, reading ahead from
// the cursor the first time it is called for a given position.
func (l *Lexer) Peek() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	if l.peeked == nil {
		tok, err := l.scan()
		if err != nil {
			l.err = err.(*Error)
			return Token{}, err
		}
		l.peeked = &tok
	}
	return *l.peeked, nil
}

// Next returns the next token and advances past it.
func (l *Lexer) Next() (Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return Token{}, err
	}
	l.peeked = nil
	return tok, nil
}

// isDigit, isIdentStart, and isIdentCont classify source bytes into the
// three character classes the grammar cares about.
func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
func isIdentCont(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
func isOpChar(ch byte) bool    { return bytesContain("+-*/%=&|<>!", ch) }
func isPunc(ch byte) bool      { return bytesContain(",;(){}[]", ch) }
func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func bytesContain(set string, ch byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == ch {
			return true
		}
	}
	return false
}

// skipWhitespaceAndComments consumes runs of whitespace and '#' line
// comments between tokens.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		ch := l.cur.Peek()
		if isWhitespace(ch) {
			l.cur.Advance()
			continue
		}
		if ch == '#' {
			for l.cur.Peek() != '\n' && !l.cur.AtEOF() {
				l.cur.Advance()
			}
			if l.cur.Peek() == '\n' {
				l.cur.Advance()
			}
			continue
		}
		break
	}
}

// scan produces the single next token, trying the production rules in
// order: digit, identifier-start, punctuation, operator, else error.
func (l *Lexer) scan() (Token, error) {
	l.skipWhitespaceAndComments()

	if l.cur.AtEOF() {
		return Token{Type: EOF, Pos: l.cur.Pos()}, nil
	}

	pos := l.cur.Pos()
	ch := l.cur.Peek()

	switch {
	case isDigit(ch):
		return l.readNumber(pos)
	case isIdentStart(ch):
		return l.readIdent(pos), nil
	case isPunc(ch):
		l.cur.Advance()
		return Token{Type: PUNCT, Value: string(ch), Pos: pos}, nil
	case isOpChar(ch):
		return l.readOperator(pos)
	default:
		l.cur.Advance()
		return Token{}, &Error{Pos: pos, Msg: fmt.Sprintf("unexpected character %q", ch)}
	}
}

// readNumber consumes a digit run, allowing exactly one interior '.'; a
// second '.' is left unconsumed and ends the number (so "1.2.3" lexes as
// NUMBER(1.2), and the following '.' is then rejected by scan as an
// unexpected character, since '.' is not an operator character).
func (l *Lexer) readNumber(pos Position) (Token, error) {
	start := l.cur.pos
	hasDot := false
	for {
		ch := l.cur.Peek()
		if isDigit(ch) {
			l.cur.Advance()
			continue
		}
		if ch == '.' && !hasDot {
			hasDot = true
			l.cur.Advance()
			continue
		}
		break
	}
	text := l.cur.src[start:l.cur.pos]

	if hasDot {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &Error{Pos: pos, Msg: fmt.Sprintf("malformed number %q", text)}
		}
		return Token{Type: NUMBER, Value: text, Pos: pos, Kind: FloatKind, FltVal: v}, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &Error{Pos: pos, Msg: fmt.Sprintf("malformed number %q", text)}
	}
	return Token{Type: NUMBER, Value: text, Pos: pos, Kind: IntKind, IntVal: v}, nil
}

// readIdent consumes a run of identifier characters and classifies the
// result as a keyword or a plain variable name.
func (l *Lexer) readIdent(pos Position) Token {
	start := l.cur.pos
	for isIdentCont(l.cur.Peek()) {
		l.cur.Advance()
	}
	text := l.cur.src[start:l.cur.pos]
	if keywords[text] {
		return Token{Type: KEYWORD, Value: text, Pos: pos}
	}
	return Token{Type: IDENT, Value: text, Pos: pos}
}

// readOperator consumes the maximal run of operator characters and
// checks it against the legal lexeme set. An unrecognized run (e.g. "*%")
// is a lex error, not silently split into smaller tokens. Characters
// outside the operator set (e.g. "~") never reach here; scan rejects them.
func (l *Lexer) readOperator(pos Position) (Token, error) {
	start := l.cur.pos
	for isOpChar(l.cur.Peek()) {
		l.cur.Advance()
	}
	text := l.cur.src[start:l.cur.pos]
	if !operatorLexemes[text] {
		return Token{}, &Error{Pos: pos, Msg: fmt.Sprintf("illegal operator %q", text)}
	}
	return Token{Type: OPERATOR, Value: text, Pos: pos}, nil
}

// All tokenizes the entire source, mainly useful for tests and
// debugging; production parsing drives the Lexer through Peek/Next
// directly.
func (l *Lexer) All() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
