/*
File    : pixelscript/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/pixelscript/lexer"
)

// peekIsPunct/peekIsKw report whether the upcoming token is the given
// punctuation character or keyword, without consuming it.
func (p *Parser) peekIsPunct(ch string) (bool, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return false, err
	}
	return tok.IsPunct(ch), nil
}

func (p *Parser) peekIsKw(kw string) (bool, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return false, err
	}
	return tok.IsKeyword(kw), nil
}

// skipPunct/skipKw consume the expected punctuation/keyword token or
// return a parse Error naming what was expected and what was found.
func (p *Parser) skipPunct(ch string) error {
	ok, err := p.peekIsPunct(ch)
	if err != nil {
		return err
	}
	if !ok {
		tok, _ := p.lex.Peek()
		return &Error{Pos: tok.Pos, Msg: fmt.Sprintf("expecting punctuation %q, got %s", ch, describe(tok))}
	}
	_, err = p.lex.Next()
	return err
}

func (p *Parser) skipKw(kw string) error {
	ok, err := p.peekIsKw(kw)
	if err != nil {
		return err
	}
	if !ok {
		tok, _ := p.lex.Peek()
		return &Error{Pos: tok.Pos, Msg: fmt.Sprintf("expecting keyword %q, got %s", kw, describe(tok))}
	}
	_, err = p.lex.Next()
	return err
}

func describe(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Value)
}

func (p *Parser) unexpected(tok lexer.Token) error {
	return &Error{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected token: %s", describe(tok))}
}

// delimited parses a start/stop-delimited, separator-separated list,
// tolerating a trailing separator before stop (e.g. "(a, b,)") and an
// entirely empty list (e.g. "()").
func (p *Parser) delimited(start, stop, sep string, item func() (Node, error)) ([]Node, error) {
	var nodes []Node
	if err := p.skipPunct(start); err != nil {
		return nil, err
	}

	first := true
	for {
		tok, err := p.lex.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == lexer.EOF {
			return nil, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("unterminated list, expected %q", stop)}
		}
		if tok.IsPunct(stop) {
			break
		}

		if first {
			first = false
		} else if err := p.skipPunct(sep); err != nil {
			return nil, err
		}

		ok, err := p.peekIsPunct(stop)
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}

		node, err := item()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	if err := p.skipPunct(stop); err != nil {
		return nil, err
	}
	return nodes, nil
}
