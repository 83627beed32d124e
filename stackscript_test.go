package stackscript

import (
	"bytes"
	"context"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/object"
	"github.com/risor-io/stackscript/parser"
	"github.com/risor-io/stackscript/token"
)

func TestCompile(t *testing.T) {
	instrs, err := Compile(context.Background(), "let x = 1 + 2; show(x);")
	require.NoError(t, err)
	require.Equal(t, []ir.Instruction{
		ir.Push{Value: object.NewInt(1)},
		ir.Push{Value: object.NewInt(2)},
		ir.Operation{Op: "+"},
		ir.DeclareVariable{Name: "x"},
		ir.GetVariable{Name: "x"},
		ir.Call{Name: "show", ArgCount: 1},
	}, instrs)
}

func TestCompileEmpty(t *testing.T) {
	instrs, err := Compile(context.Background(), "  // nothing here\n")
	require.NoError(t, err)
	assert.Empty(t, instrs)
}

func TestCompileParseError(t *testing.T) {
	src := "let x = 1;\nlet = 2;"
	_, err := Compile(context.Background(), src, WithFilename("main.ss"))
	require.Error(t, err)
	assert.True(t, parser.IsKind(err, parser.UnexpectedToken))

	pe := err.(parser.ParserError)
	assert.Equal(t, "main.ss", pe.File())
	assert.Equal(t, "let = 2;", pe.SourceCode())

	rendered := errors.Render(err, false)
	assert.Contains(t, rendered, "--> main.ss:2:5")
	assert.Contains(t, rendered, " 2 | let = 2;")
}

func TestCompileLexError(t *testing.T) {
	_, err := Compile(context.Background(), "let x = 1 @ 2;", WithFilename("main.ss"))
	require.Error(t, err)
	fe, ok := err.(errors.FormattableError)
	require.True(t, ok)
	formatted := fe.ToFormatted()
	assert.Equal(t, errors.E1003, formatted.Code)
	assert.Equal(t, "main.ss", formatted.Filename)
	assert.Equal(t, 11, formatted.Column)
}

func TestCompileMaxDepth(t *testing.T) {
	_, err := Compile(context.Background(), "fn a() { fn b() { } }", WithMaxDepth(1))
	require.Error(t, err)
	assert.Equal(t, errors.E1009, err.(parser.ParserError).Code())
}

func TestCompileTranslator(t *testing.T) {
	translator := parser.TranslatorFunc(func(tokens []token.Token) ([]ir.Instruction, error) {
		return []ir.Instruction{ir.Push{Value: object.NewInt(int64(len(tokens)))}}, nil
	})
	instrs, err := Compile(context.Background(), "let x = a + b;", WithTranslator(translator))
	require.NoError(t, err)
	assert.Equal(t, []ir.Instruction{
		ir.Push{Value: object.NewInt(3)},
		ir.DeclareVariable{Name: "x"},
	}, instrs)
}

func TestCompileVerify(t *testing.T) {
	bad := parser.TranslatorFunc(func(tokens []token.Token) ([]ir.Instruction, error) {
		return []ir.Instruction{ir.Pop{}}, nil
	})
	_, err := Compile(context.Background(), "let x = 1;", WithTranslator(bad))
	require.NoError(t, err, "verification is opt-in")

	_, err = Compile(context.Background(), "let x = 1;", WithTranslator(bad), WithVerify())
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	var underflow *ir.UnderflowError
	require.ErrorAs(t, merr.Errors[0], &underflow)
	assert.Equal(t, 0, underflow.Index)
}

func TestCompileLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := Compile(context.Background(), "fn f() { }", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "parsed function")
}

func TestCompileCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compile(ctx, "let x = 1;")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("foo();", WithFilename("a.ss"))
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.True(t, tokens[0].Equal(token.NewIdent("foo")))
	assert.Equal(t, "a.ss", tokens[0].StartPosition.File)
	assert.Equal(t, token.EOF, tokens[4].Kind)
}
