// Package parser converts a stream of lexical tokens into the stackscript
// instruction sequence.
//
// A parser is created by calling New() with the tokens as input. The parser
// should then be used only once, by calling parser.Parse() to produce the
// instructions. The package-level Parse is shorthand for both steps.
//
// Parsing is fail-fast: the first violation aborts the parse and is returned
// as a ParserError.
package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/expr"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/token"
)

// DefaultMaxDepth is the default maximum nesting depth of function
// declarations.
const DefaultMaxDepth = 500

// Translator converts the raw tokens of one infix expression into
// instructions that leave exactly one value on the stack. The parser splices
// the result into its output without inspecting it.
type Translator interface {
	Translate(tokens []token.Token) ([]ir.Instruction, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(tokens []token.Token) ([]ir.Instruction, error)

// Translate calls f(tokens).
func (f TranslatorFunc) Translate(tokens []token.Token) ([]ir.Instruction, error) {
	return f(tokens)
}

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithTranslator sets the expression translator. The default is expr.New().
func WithTranslator(t Translator) Option {
	return func(p *Parser) {
		p.translator = t
	}
}

// WithFilename sets the file name reported in errors.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithSource provides the source text the tokens were lexed from, so errors
// can quote the offending line.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// WithMaxDepth sets the maximum nesting depth of function declarations.
// The default is 500.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// WithLogger sets the logger used for debug tracing. The default discards
// all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// Parser object
type Parser struct {
	// the Context supplied in the Parse() call
	ctx context.Context

	// cur owns the token stream
	cur *cursor

	translator Translator

	// The filename of the input
	filename string

	// The source text, when known
	source string

	logger zerolog.Logger

	// Current function nesting depth
	depth int

	// Maximum allowed function nesting depth
	maxDepth int
}

// Parse the provided tokens and return the instruction sequence. This is
// shorthand for New(tokens, options...).Parse(ctx).
func Parse(ctx context.Context, tokens []token.Token, options ...Option) ([]ir.Instruction, error) {
	return New(tokens, options...).Parse(ctx)
}

// New returns a Parser for the given tokens. The slice is read but never
// modified.
func New(tokens []token.Token, options ...Option) *Parser {
	p := &Parser{
		cur:      newCursor(tokens),
		maxDepth: DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.translator == nil {
		p.translator = expr.New()
	}
	return p
}

// Parse the whole program up to and including the end-of-input marker.
func (p *Parser) Parse(ctx context.Context) ([]ir.Instruction, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p.ctx = ctx
	instrs, err := p.parseProgram()
	if err != nil {
		p.logger.Debug().Err(err).Int("offset", p.cur.offset()).Msg("parse failed")
		return nil, err
	}
	return instrs, nil
}

// parseProgram parses statements until the end-of-input marker, which it
// consumes.
func (p *Parser) parseProgram() ([]ir.Instruction, error) {
	instrs := []ir.Instruction{}
	for {
		tok, ok := p.cur.peek()
		if !ok {
			return nil, p.eofError("program", "end of input")
		}
		if tok.Kind == token.EOF {
			p.cur.consume()
			return instrs, nil
		}
		if tok.Equal(token.RBrace) {
			return nil, p.unexpectedToken(tok, "program", "statement")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		p.logStatement("program", stmt)
		instrs = append(instrs, stmt...)
	}
}

// parseBlock parses statements until a closing brace. The brace is left for
// the caller to consume.
func (p *Parser) parseBlock(context string) ([]ir.Instruction, error) {
	instrs := []ir.Instruction{}
	for {
		tok, ok := p.cur.peek()
		if !ok || tok.Kind == token.EOF {
			return nil, p.eofError(context, `"}"`)
		}
		if tok.Equal(token.RBrace) {
			return instrs, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		p.logStatement(context, stmt)
		instrs = append(instrs, stmt...)
	}
}

// parseStatement dispatches on the next token.
func (p *Parser) parseStatement() ([]ir.Instruction, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}
	tok, ok := p.cur.peek()
	if !ok {
		return nil, p.eofError("statement", "statement")
	}
	switch tok.Kind {
	case token.KEYWORD:
		switch tok.Keyword {
		case token.LET:
			return p.parseLet()
		case token.FN:
			return p.parseFunc()
		default:
			return nil, p.unimplementedKeyword(tok)
		}
	case token.IDENT:
		if next, ok := p.cur.peekN(1); ok && next.Equal(token.LParen) && p.isCallStatement() {
			return p.parseCall()
		}
	}
	return p.parseExpressionStatement()
}

// isCallStatement reports whether the `name(` at the cursor is a whole call
// statement. A call whose closing parenthesis is followed by an operator,
// as in `f(1) + 2;`, is part of a larger expression instead.
func (p *Parser) isCallStatement() bool {
	depth := 0
	for i := 1; ; i++ {
		tok, ok := p.cur.peekN(i)
		if !ok || tok.Kind == token.EOF {
			return true
		}
		switch {
		case tok.Equal(token.LParen):
			depth++
		case tok.Equal(token.RParen):
			depth--
			if depth == 0 {
				next, ok := p.cur.peekN(i + 1)
				return !ok || next.Kind != token.OPERATOR
			}
		}
	}
}

func (p *Parser) logStatement(scope string, stmt []ir.Instruction) {
	p.logger.Debug().
		Str("scope", scope).
		Int("offset", p.cur.offset()).
		Int("instructions", len(stmt)).
		Msg("parsed statement")
}

// translate hands expression tokens to the translator. Translator errors
// that are not already parser errors become syntax errors located at the
// token they refer to.
func (p *Parser) translate(context string, tokens []token.Token) ([]ir.Instruction, error) {
	if len(tokens) == 0 {
		next, _ := p.cur.peek()
		return nil, p.syntaxError(next, errors.E1004, "missing expression in %s", context)
	}
	instrs, err := p.translator.Translate(tokens)
	if err == nil {
		return instrs, nil
	}
	if pe, ok := err.(ParserError); ok {
		return nil, pe
	}
	at := tokens[0]
	if located, ok := err.(interface{ Token() token.Token }); ok && located.Token().Kind != "" {
		at = located.Token()
	}
	return nil, NewSyntaxError(ErrorOpts{
		Code:          errors.E1003,
		Cause:         err,
		File:          p.file(at),
		StartPosition: at.StartPosition,
		EndPosition:   at.EndPosition,
		SourceCode:    p.lineText(at.StartPosition),
	})
}

// expect consumes the next token, which must equal expected.
func (p *Parser) expect(expected token.Token, context string) (token.Token, error) {
	tok, ok := p.cur.peek()
	if !ok || (tok.Kind == token.EOF && expected.Kind != token.EOF) {
		return token.Token{}, p.eofError(context, expected.Describe())
	}
	if !tok.Equal(expected) {
		return token.Token{}, p.unexpectedToken(tok, context, expected.Describe())
	}
	p.cur.consume()
	return tok, nil
}

// expectIdent consumes the next token, which must be an identifier.
func (p *Parser) expectIdent(context string) (token.Token, error) {
	tok, ok := p.cur.peek()
	if !ok || tok.Kind == token.EOF {
		return token.Token{}, p.eofError(context, "identifier")
	}
	if tok.Kind != token.IDENT {
		err := p.unexpectedToken(tok, context, "identifier")
		err.code = errors.E1006
		return token.Token{}, err
	}
	p.cur.consume()
	return tok, nil
}

func (p *Parser) eofError(context, expected string) *UnexpectedEOFError {
	// Point at the end-of-input marker when there is one, otherwise just past
	// the last token read.
	at, ok := p.cur.peek()
	if !ok {
		at = p.cur.last()
		at.StartPosition = at.EndPosition
	}
	return &UnexpectedEOFError{
		BaseParserError: NewParserError(ErrorOpts{
			Kind:          UnexpectedEOF,
			Code:          errors.E1002,
			Message:       fmt.Sprintf("unexpected end of input while parsing %s (expected %s)", context, expected),
			File:          p.file(at),
			StartPosition: at.StartPosition,
			EndPosition:   at.EndPosition,
			SourceCode:    p.lineText(at.StartPosition),
		}),
		Expected: expected,
	}
}

func (p *Parser) unexpectedToken(got token.Token, context, expected string) *UnexpectedTokenError {
	return &UnexpectedTokenError{
		BaseParserError: NewParserError(ErrorOpts{
			Kind: UnexpectedToken,
			Code: errors.E1001,
			Message: fmt.Sprintf("unexpected %s while parsing %s (expected %s)",
				got.Describe(), context, expected),
			File:          p.file(got),
			StartPosition: got.StartPosition,
			EndPosition:   got.EndPosition,
			SourceCode:    p.lineText(got.StartPosition),
		}),
		Expected: expected,
		Got:      got,
	}
}

func (p *Parser) unimplementedKeyword(tok token.Token) *UnimplementedKeywordError {
	return &UnimplementedKeywordError{
		BaseParserError: NewParserError(ErrorOpts{
			Kind:          UnimplementedKeyword,
			Code:          errors.E1005,
			Message:       fmt.Sprintf("unimplemented keyword %q", tok.Literal),
			File:          p.file(tok),
			StartPosition: tok.StartPosition,
			EndPosition:   tok.EndPosition,
			SourceCode:    p.lineText(tok.StartPosition),
		}),
		Keyword: tok.Keyword,
	}
}

func (p *Parser) syntaxError(tok token.Token, code errors.ErrorCode, msg string, args ...interface{}) *SyntaxError {
	return NewSyntaxError(ErrorOpts{
		Code:          code,
		Message:       fmt.Sprintf(msg, args...),
		File:          p.file(tok),
		StartPosition: tok.StartPosition,
		EndPosition:   tok.EndPosition,
		SourceCode:    p.lineText(tok.StartPosition),
	})
}

// file prefers the configured filename over the one recorded by the lexer.
func (p *Parser) file(tok token.Token) string {
	if p.filename != "" {
		return p.filename
	}
	return tok.StartPosition.File
}

// lineText returns the source line containing pos, if the source is known.
func (p *Parser) lineText(pos token.Position) string {
	if p.source == "" || pos.LineStart < 0 || pos.LineStart > len(p.source) {
		return ""
	}
	line := p.source[pos.LineStart:]
	if end := strings.IndexByte(line, '\n'); end >= 0 {
		line = line[:end]
	}
	return strings.TrimRight(line, "\r")
}
