/*
File    : pixelscript/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/pixelscript/lexer"
)

// Parser drives a lexer.Lexer through the pixelscript grammar, producing
// a single Prog node for the whole program.
type Parser struct {
	lex *lexer.Lexer
}

// New creates a Parser over the given program text.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// Parse parses the entire token stream into a Prog node.
func Parse(src string) (*Prog, error) {
	return New(src).Parse()
}

// Parse is the top-level entry point: a ';'-separated sequence of
// expressions, with a trailing ';' tolerated, producing a Prog node.
func (p *Parser) Parse() (*Prog, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	prog := &Prog{base: base{pos: tok.Pos}}

	for {
		eof, err := p.atEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}

		stmt, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		isSemi, err := p.peekIsPunct(";")
		if err != nil {
			return nil, err
		}
		if isSemi {
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	eof, err := p.atEOF()
	if err != nil {
		return nil, err
	}
	if !eof {
		tok, _ := p.lex.Peek()
		return nil, p.unexpected(tok)
	}
	return prog, nil
}

func (p *Parser) atEOF() (bool, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return false, err
	}
	return tok.Type == lexer.EOF, nil
}

// parseExpression parses one full expression: an atom (wrapped in any
// immediately-following call/index) climbed through the precedence
// table, then wrapped again for a call/index that follows the whole
// binary expression (so "f(x)[y]" and "(a+b)(c)" both parse).
func (p *Parser) parseExpression() (Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	atom, err = p.maybeCallOrIndex(atom)
	if err != nil {
		return nil, err
	}
	binary, err := p.maybeBinary(atom, 0)
	if err != nil {
		return nil, err
	}
	return p.maybeCallOrIndex(binary)
}

// maybeCallOrIndex wraps expr in a single Call or Index node if the next
// token is "(" or "[". It is not recursive -- one postfix wrap per call
// site -- but parseExpression calls it at both the atom site and the
// full-expression site, which together produce chains like "f(x)[y]"
// through ordinary grammar recursion.
func (p *Parser) maybeCallOrIndex(expr Node) (Node, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.IsPunct("("):
		args, err := p.delimited("(", ")", ",", p.parseExpression)
		if err != nil {
			return nil, err
		}
		return &Call{base: base{pos: expr.Pos()}, Callee: expr, Args: args}, nil
	case tok.IsPunct("["):
		indices, err := p.delimited("[", "]", ",", p.parseExpression)
		if err != nil {
			return nil, err
		}
		return &Index{base: base{pos: expr.Pos()}, Receiver: expr, Indices: indices}, nil
	default:
		return expr, nil
	}
}

// parseAtom parses one of: parenthesized expression, block, if, lambda,
// for, boolean literal, variable reference, or number literal.
func (p *Parser) parseAtom() (Node, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.IsPunct("("):
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.skipPunct(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.IsPunct("{"):
		return p.parseBlock()

	case tok.IsKeyword("if"):
		return p.parseIf()

	case tok.IsKeyword("lambda"):
		return p.parseLambda()

	case tok.IsKeyword("for"):
		return p.parseFor()

	case tok.IsKeyword("true"):
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		return &Bool{base: base{pos: tok.Pos}, Value: true}, nil

	case tok.IsKeyword("false"):
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		return &Bool{base: base{pos: tok.Pos}, Value: false}, nil

	case tok.Type == lexer.IDENT:
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		return &Var{base: base{pos: tok.Pos}, Name: tok.Value}, nil

	case tok.Type == lexer.NUMBER:
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		if tok.Kind == lexer.FloatKind {
			return &Num{base: base{pos: tok.Pos}, IsFloat: true, FltVal: tok.FltVal}, nil
		}
		return &Num{base: base{pos: tok.Pos}, IntVal: tok.IntVal}, nil

	default:
		return nil, p.unexpected(tok)
	}
}

// parseBlock parses "{ expr (; expr)* }". An empty block collapses to
// Bool(false); a single-statement block unwraps to just that statement;
// anything larger becomes a Prog. A block does NOT introduce a new
// lexical scope -- only for() and lambda bodies do.
func (p *Parser) parseBlock() (Node, error) {
	openTok, _ := p.lex.Peek()
	if err := p.skipPunct("{"); err != nil {
		return nil, err
	}

	var stmts []Node
	for {
		closed, err := p.peekIsPunct("}")
		if err != nil {
			return nil, err
		}
		if closed {
			break
		}

		stmt, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)

		isSemi, err := p.peekIsPunct(";")
		if err != nil {
			return nil, err
		}
		if isSemi {
			if _, err := p.lex.Next(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}

	if err := p.skipPunct("}"); err != nil {
		return nil, err
	}

	switch len(stmts) {
	case 0:
		return &Bool{base: base{pos: openTok.Pos}, Value: false}, nil
	case 1:
		return stmts[0], nil
	default:
		return &Prog{base: base{pos: openTok.Pos}, Statements: stmts}, nil
	}
}

// parseIf parses "if cond then (else other)?" -- no "then" keyword.
func (p *Parser) parseIf() (Node, error) {
	tok, _ := p.lex.Peek()
	if err := p.skipKw("if"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	node := &If{base: base{pos: tok.Pos}, Cond: cond, Then: then}

	isElse, err := p.peekIsKw("else")
	if err != nil {
		return nil, err
	}
	if isElse {
		if _, err := p.lex.Next(); err != nil {
			return nil, err
		}
		other, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Else = other
	}
	return node, nil
}

// parseLambda parses "lambda ( name (, name)* ) body". Zero parameters
// are allowed ("lambda() body").
func (p *Parser) parseLambda() (Node, error) {
	tok, _ := p.lex.Peek()
	if err := p.skipKw("lambda"); err != nil {
		return nil, err
	}

	paramNodes, err := p.delimited("(", ")", ",", p.parseVarName)
	if err != nil {
		return nil, err
	}
	params := make([]string, len(paramNodes))
	for i, n := range paramNodes {
		params[i] = n.(*Var).Name
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Lambda{base: base{pos: tok.Pos}, Params: params, Body: body}, nil
}

// parseVarName parses a single identifier, for use inside delimited()
// parameter lists. It returns a *Var so it satisfies the `func() (Node,
// error)` shape delimited() expects; callers that need just the name
// unwrap it (see parseLambda).
func (p *Parser) parseVarName() (Node, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return nil, err
	}
	if tok.Type != lexer.IDENT {
		return nil, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("expecting variable name, got %s", describe(tok))}
	}
	return &Var{base: base{pos: tok.Pos}, Name: tok.Value}, nil
}

// parseFor parses "for ( init ; cond ; incr ) body".
func (p *Parser) parseFor() (Node, error) {
	tok, _ := p.lex.Peek()
	if err := p.skipKw("for"); err != nil {
		return nil, err
	}
	if err := p.skipPunct("("); err != nil {
		return nil, err
	}

	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.skipPunct(";"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.skipPunct(";"); err != nil {
		return nil, err
	}

	incr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.skipPunct(")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &For{base: base{pos: tok.Pos}, Init: init, Cond: cond, Incr: incr, Body: body}, nil
}
