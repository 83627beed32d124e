package token

import (
	"strings"
	"testing"

	"github.com/risor-io/stackscript/object"
	"github.com/stretchr/testify/require"
)

// Test looking up values succeeds, then fails
func TestLookup(t *testing.T) {
	for key, val := range keywords {
		kw, ok := LookupKeyword(key)
		require.True(t, ok, "lookup of %s failed", key)
		require.Equal(t, val, kw)

		// Uppercase keywords are plain identifiers.
		_, ok = LookupKeyword(strings.ToUpper(key))
		require.False(t, ok, "lookup of %s should fail", strings.ToUpper(key))
	}
}

func TestPosition(t *testing.T) {
	tok := Token{
		Kind:    IDENT,
		Literal: "foo",
		StartPosition: Position{
			Line:   2,
			Column: 0,
		},
	}
	// Switches to 1-indexed
	require.Equal(t, 3, tok.StartPosition.LineNumber())
	require.Equal(t, 1, tok.StartPosition.ColumnNumber())
	require.True(t, tok.StartPosition.IsValid())
	require.False(t, NoPos.IsValid())
}

func TestStructuralEquality(t *testing.T) {
	a := NewSymbol(';')
	b := NewSymbol(';')
	b.StartPosition = Position{Line: 4, Column: 7}
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(Semicolon))

	require.False(t, NewSymbol('(').Equal(LParen))
	require.True(t, NewOperator("(").Equal(LParen))
	require.False(t, NewIdent("let").Equal(NewKeyword(LET)))
	require.True(t, NewKeyword(FN).Equal(NewKeyword(FN)))
	require.True(t, NewEOF().Equal(Token{Kind: EOF}))

	require.True(t, NewLiteral(object.NewInt(2)).Equal(NewLiteral(object.NewInt(2))))
	require.False(t, NewLiteral(object.NewInt(2)).Equal(NewLiteral(object.NewString("2"))))
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "end of file", NewEOF().Describe())
	require.Equal(t, `identifier "x"`, NewIdent("x").Describe())
	require.Equal(t, `keyword "fn"`, NewKeyword(FN).Describe())
	require.Equal(t, `";"`, Semicolon.Describe())
	require.Equal(t, `Operator("(")`, LParen.String())
	require.Equal(t, "Literal(2)", NewLiteral(object.NewInt(2)).String())
}

func TestKeywords(t *testing.T) {
	require.Equal(t, []string{"else", "fn", "if", "let", "return", "while"}, Keywords())
	for _, name := range Keywords() {
		kw, ok := LookupKeyword(name)
		require.True(t, ok)
		require.Equal(t, name, string(kw))
	}
}
