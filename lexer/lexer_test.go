/*
File    : pixelscript/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	toks, err := New(src).All()
	require.NoError(t, err)
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestLexerPunctAndOperators(t *testing.T) {
	toks, err := New("pixels[0,0] = rgb(10, 20, 30)").All()
	require.NoError(t, err)

	require.Equal(t, IDENT, toks[0].Type)
	require.Equal(t, "pixels", toks[0].Value)
	require.True(t, toks[1].IsPunct("["))
	require.True(t, toks[6].IsOperator("="))
	require.True(t, toks[7].IsKeyword("") == false)
	require.Equal(t, "rgb", toks[7].Value)
}

func TestLexerNumbers(t *testing.T) {
	lx := New("10 3.5 1.2.3")
	var toks []Token
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
	}
	require.Equal(t, IntKind, toks[0].Kind)
	require.EqualValues(t, 10, toks[0].IntVal)
	require.Equal(t, FloatKind, toks[1].Kind)
	require.InDelta(t, 3.5, toks[1].FltVal, 1e-9)

	// "1.2.3" -- second dot ends the number, producing NUMBER(1.2);
	// the lone "." that follows is not an operator character, so lexing
	// it is an error.
	require.Equal(t, FloatKind, toks[2].Kind)
	require.InDelta(t, 1.2, toks[2].FltVal, 1e-9)
	_, err := lx.Next()
	require.Error(t, err)
}

func TestLexerKeywordsVsIdents(t *testing.T) {
	types := tokenTypes(t, "if else lambda true false for ifx")
	require.Equal(t, []TokenType{KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, KEYWORD, IDENT}, types)
}

func TestLexerComment(t *testing.T) {
	toks, err := New("1 + 2 # this is a comment\n+ 3").All()
	require.NoError(t, err)
	require.Len(t, toks, 5)
}

func TestLexerUnexpectedCharacter(t *testing.T) {
	_, err := New("1 ~ 2").All()
	require.Error(t, err)
}

func TestLexerIllegalOperatorCombo(t *testing.T) {
	_, err := New("1 *% 2").All()
	require.Error(t, err)
}

func TestLexerLineColumnTracking(t *testing.T) {
	lx := New("ab\ncd")
	var last Token
	for {
		tok, err := lx.Next()
		require.NoError(t, err)
		if tok.Type == EOF {
			break
		}
		last = tok
	}
	require.Equal(t, "cd", last.Value)
	require.Equal(t, 2, last.Pos.Line)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	lx := New("foo bar")
	first, err := lx.Peek()
	require.NoError(t, err)
	second, err := lx.Peek()
	require.NoError(t, err)
	require.Equal(t, first, second)

	consumed, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, first, consumed)
}
