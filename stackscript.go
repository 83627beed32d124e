// Package stackscript turns stackscript source text into the flat
// stack-machine instruction sequence consumed by an evaluator.
//
//	instrs, err := stackscript.Compile(ctx, "let x = 1 + 2;")
package stackscript

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/risor-io/stackscript/internal/lexer"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/parser"
	"github.com/risor-io/stackscript/token"
)

// Option configures a compilation.
type Option func(*options)

type options struct {
	filename   string
	logger     zerolog.Logger
	maxDepth   int
	translator parser.Translator
	verify     bool
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts(source string) []parser.Option {
	opts := []parser.Option{
		parser.WithSource(source),
		parser.WithLogger(o.logger),
	}
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	if o.translator != nil {
		opts = append(opts, parser.WithTranslator(o.translator))
	}
	return opts
}

// WithFilename sets the filename for the source code being compiled.
// This is used for error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithLogger sets the logger that receives parser debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxDepth limits how deeply function declarations may nest.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithTranslator replaces the default expression translator.
func WithTranslator(t parser.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithVerify checks the stack discipline of the compiled instructions with
// ir.Verify before returning them.
func WithVerify() Option {
	return func(o *options) {
		o.verify = true
	}
}

// Tokenize lexes source code into tokens, ending with the end-of-input
// marker.
func Tokenize(source string, opts ...Option) ([]token.Token, error) {
	o := collectOptions(opts...)
	var lexerOpts []lexer.Option
	if o.filename != "" {
		lexerOpts = append(lexerOpts, lexer.WithFilename(o.filename))
	}
	return lexer.Tokenize(source, lexerOpts...)
}

// Compile lexes and parses source code into an instruction sequence.
// Lexer and parse failures implement errors.FormattableError; parse failures
// are also parser.ParserError values. Verification failures are returned as
// a *multierror.Error.
func Compile(ctx context.Context, source string, opts ...Option) ([]ir.Instruction, error) {
	o := collectOptions(opts...)
	tokens, err := Tokenize(source, opts...)
	if err != nil {
		return nil, err
	}
	instrs, err := parser.Parse(ctx, tokens, o.parserOpts(source)...)
	if err != nil {
		return nil, err
	}
	if o.verify {
		if err := ir.Verify(instrs); err != nil {
			return nil, err
		}
	}
	return instrs, nil
}
