package lexer

import (
	"testing"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/object"
	"github.com/risor-io/stackscript/token"
	"github.com/stretchr/testify/require"
)

type expectedToken struct {
	kind    token.Kind
	literal string
}

func requireTokens(t *testing.T, input string, expected []expectedToken) {
	t.Helper()
	l := New(input)
	for i, tt := range expected {
		tok, err := l.Next()
		require.NoError(t, err)
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong, expected=%q, got=%q", i, tt.kind, tok.Kind)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong, expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestNextToken1(t *testing.T) {
	requireTokens(t, "%=+(){},;==!=<=>=&&||<>", []expectedToken{
		{token.OPERATOR, "%"},
		{token.SYMBOL, "="},
		{token.OPERATOR, "+"},
		{token.OPERATOR, "("},
		{token.OPERATOR, ")"},
		{token.SYMBOL, "{"},
		{token.SYMBOL, "}"},
		{token.SYMBOL, ","},
		{token.SYMBOL, ";"},
		{token.OPERATOR, "=="},
		{token.OPERATOR, "!="},
		{token.OPERATOR, "<="},
		{token.OPERATOR, ">="},
		{token.OPERATOR, "&&"},
		{token.OPERATOR, "||"},
		{token.OPERATOR, "<"},
		{token.OPERATOR, ">"},
		{token.EOF, ""},
	})
}

func TestNextToken2(t *testing.T) {
	input := `let five = 5;
fn add(x, y) {
  let sum = x + y;
}
add(five, 10.5);
"foo bar";
return true;
`
	requireTokens(t, input, []expectedToken{
		{token.KEYWORD, "let"},
		{token.IDENT, "five"},
		{token.SYMBOL, "="},
		{token.LITERAL, "5"},
		{token.SYMBOL, ";"},
		{token.KEYWORD, "fn"},
		{token.IDENT, "add"},
		{token.OPERATOR, "("},
		{token.IDENT, "x"},
		{token.SYMBOL, ","},
		{token.IDENT, "y"},
		{token.OPERATOR, ")"},
		{token.SYMBOL, "{"},
		{token.KEYWORD, "let"},
		{token.IDENT, "sum"},
		{token.SYMBOL, "="},
		{token.IDENT, "x"},
		{token.OPERATOR, "+"},
		{token.IDENT, "y"},
		{token.SYMBOL, ";"},
		{token.SYMBOL, "}"},
		{token.IDENT, "add"},
		{token.OPERATOR, "("},
		{token.IDENT, "five"},
		{token.SYMBOL, ","},
		{token.LITERAL, "10.5"},
		{token.OPERATOR, ")"},
		{token.SYMBOL, ";"},
		{token.LITERAL, `"foo bar"`},
		{token.SYMBOL, ";"},
		{token.KEYWORD, "return"},
		{token.LITERAL, "true"},
		{token.SYMBOL, ";"},
		{token.EOF, ""},
	})
}

func TestKeywordTags(t *testing.T) {
	tokens, err := Tokenize("let fn return letter")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	require.True(t, tokens[0].IsKeyword(token.LET))
	require.True(t, tokens[1].IsKeyword(token.FN))
	require.True(t, tokens[2].IsKeyword(token.RETURN))
	require.Equal(t, token.IDENT, tokens[3].Kind)
	require.Equal(t, token.EOF, tokens[4].Kind)
}

func TestLiteralValues(t *testing.T) {
	tokens, err := Tokenize(`42 3.25 "a\tb\"c" false`)
	require.NoError(t, err)
	require.Equal(t, object.NewInt(42), tokens[0].Value)
	require.Equal(t, object.NewFloat(3.25), tokens[1].Value)
	require.Equal(t, object.NewString("a\tb\"c"), tokens[2].Value)
	require.Equal(t, object.False, tokens[3].Value)
}

func TestComments(t *testing.T) {
	input := `// leading comment
let x = 1; /* inline
comment */ x;`
	requireTokens(t, input, []expectedToken{
		{token.KEYWORD, "let"},
		{token.IDENT, "x"},
		{token.SYMBOL, "="},
		{token.LITERAL, "1"},
		{token.SYMBOL, ";"},
		{token.IDENT, "x"},
		{token.SYMBOL, ";"},
		{token.EOF, ""},
	})
}

func TestShebang(t *testing.T) {
	requireTokens(t, "#!/usr/bin/env stackscript\n10;", []expectedToken{
		{token.LITERAL, "10"},
		{token.SYMBOL, ";"},
		{token.EOF, ""},
	})
}

func TestLineNumbers(t *testing.T) {
	tokens, err := Tokenize("let x = 1;\n  foo();", WithFilename("main.stk"))
	require.NoError(t, err)

	foo := tokens[5]
	require.Equal(t, "foo", foo.Literal)
	require.Equal(t, 2, foo.StartPosition.LineNumber())
	require.Equal(t, 3, foo.StartPosition.ColumnNumber())
	require.Equal(t, 5, foo.EndPosition.ColumnNumber())
	require.Equal(t, "main.stk", foo.StartPosition.File)
}

func TestInvalidNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12ab", "invalid decimal literal: 12a"},
		{"1.2.3", "invalid decimal literal: 1.2."},
		{"7.", "invalid decimal literal: 7."},
	}
	for _, tt := range tests {
		_, err := New(tt.input).Next()
		require.Error(t, err)
		require.Equal(t, tt.expected, err.Error())
	}
}

func TestInvalids(t *testing.T) {
	tests := []struct {
		input string
		code  errors.ErrorCode
		err   string
	}{
		{"@", errors.E1003, `invalid character: '@'`},
		{"!", errors.E1003, `invalid character: '!'`},
		{"a & b", errors.E1003, `invalid character: '&'`},
		{`"open`, errors.E1010, "unterminated string literal"},
		{`"bad \q"`, errors.E1003, `invalid escape sequence: \q`},
		{"/* never closed", errors.E1007, "unterminated multiline comment"},
		{`"ends in escape \`, errors.E1010, "unterminated string literal"},
		{"let x = 1;\x00 y", errors.E1003, `invalid character: '\x00'`},
	}
	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		require.Error(t, err, tt.input)
		lexErr, ok := err.(*Error)
		require.True(t, ok)
		require.Equal(t, tt.code, lexErr.Code)
		require.Equal(t, tt.err, lexErr.Error())
	}
}

func TestNulIsNotEndOfInput(t *testing.T) {
	l := New("x\x00 garbage here")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.IDENT, tok.Kind)
	_, err = l.Next()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, errors.E1003, lexErr.Code)
	require.Equal(t, 1, lexErr.Position.Char)

	// A NUL inside a comment does not end the comment early.
	tokens, err := Tokenize("// a\x00b\n/* c\x00d */ y")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Equal(t, "y", tokens[0].Literal)
}

func TestErrorFormatting(t *testing.T) {
	_, err := Tokenize("let x = 1;\nlet y = @;", WithFilename("bad.stk"))
	require.Error(t, err)
	lexErr := err.(*Error)
	require.Equal(t, "bad.stk:2:9", lexErr.Location().String())
	msg := lexErr.FriendlyErrorMessage()
	require.Contains(t, msg, "syntax error[E1003]: invalid character: '@'")
	require.Contains(t, msg, " 2 | let y = @;")
}

func TestTokenLineText(t *testing.T) {
	l := New(" let x = 32; foo();\nbar();\n")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, " let x = 32; foo();", l.GetLineText(tok))
}

func TestEmptyInput(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	require.Equal(t, token.EOF, tokens[0].Kind)
}

func TestMultipleEOFReads(t *testing.T) {
	l := New("x")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.IDENT, tok.Kind)
	for i := 0; i < 5; i++ {
		tok, err = l.Next()
		require.NoError(t, err)
		require.Equal(t, token.EOF, tok.Kind, "EOF read %d", i)
	}
}

func TestFilenameOption(t *testing.T) {
	l := New("x", WithFilename("test.stk"))
	require.Equal(t, "test.stk", l.Filename())
	l.SetFilename("updated.stk")
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "updated.stk", tok.StartPosition.File)
	require.Equal(t, "updated.stk", l.Position().File)
}
