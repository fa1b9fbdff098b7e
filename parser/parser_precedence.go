/*
File    : pixelscript/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/pixelscript/lexer"

// precedence is the operator-precedence table, higher binds tighter.
// "=" sits at the bottom and is handled with
// right-associative recursion; every other operator is left-associative.
var precedence = map[string]int{
	"=":  1,
	"||": 2,
	"&&": 3,
	"<":  7, ">": 7, "<=": 7, ">=": 7, "==": 7, "!=": 7,
	"+": 10, "-": 10,
	"*": 20, "/": 20, "%": 20, "//": 20,
}

// maybeBinary implements precedence climbing: given an already-parsed
// left operand and the minimum precedence the caller is willing to
// accept, it repeatedly folds in operators that bind at least that
// tightly.
//
// "=" is right-associative: its recursive call on the right uses a
// threshold one below its own precedence, so a second "=" to the right
// is still accepted, letting "a = b = 1" parse as "a = (b = 1)". Every other
// operator is left-associative: the recursive call on the right uses
// valPrec as the new floor, so an operator of *equal* precedence to the
// right stops the inner climb and returns control to the outer loop,
// which then folds it in on the left instead.
func (p *Parser) maybeBinary(left Node, prec int) (Node, error) {
	tok, err := p.lex.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Type != lexer.OPERATOR {
		return left, nil
	}
	valPrec, ok := precedence[tok.Value]
	if !ok || valPrec <= prec {
		return left, nil
	}

	if _, err := p.lex.Next(); err != nil {
		return nil, err
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	// Wrap here too, not just at parseExpression's two sites -- otherwise a
	// "(" or "[" following this atom is left unconsumed and later glues
	// onto the whole climbed expression instead of onto this atom, e.g.
	// "rgb(...)" on the right of "=" would attach its call to the entire
	// assignment rather than to rgb.
	atom, err = p.maybeCallOrIndex(atom)
	if err != nil {
		return nil, err
	}
	rightPrec := valPrec
	if tok.Value == "=" {
		rightPrec = valPrec - 1
	}
	right, err := p.maybeBinary(atom, rightPrec)
	if err != nil {
		return nil, err
	}

	node := Node(&Binary{base: base{pos: tok.Pos}, Op: tok.Value, Left: left, Right: right})
	if tok.Value == "=" {
		node = &Assign{base: base{pos: tok.Pos}, Target: left, Value: right}
	}

	return p.maybeBinary(node, prec)
}
