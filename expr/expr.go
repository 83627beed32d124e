// Package expr translates infix expression tokens into stack instructions.
//
// The Translator is the default expression translator used by the parser.
// Given the tokens of one expression it emits instructions that leave exactly
// one value on the evaluation stack:
//
//	1 + 2 * x   ->  Push(1) Push(2) GetVariable(x) Operation(*) Operation(+)
//	f(a, 1)     ->  GetVariable(a) Push(1) Call(f, 2)
package expr

import (
	"fmt"

	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/object"
	"github.com/risor-io/stackscript/token"
)

// DefaultMaxDepth is the default maximum nesting depth of an expression.
const DefaultMaxDepth = 500

// Option is a configuration function for a Translator.
type Option func(*Translator)

// WithMaxDepth sets the maximum nesting depth of a translated expression.
func WithMaxDepth(depth int) Option {
	return func(t *Translator) {
		t.maxDepth = depth
	}
}

// Translator converts expression tokens to instructions. It holds no state
// between calls and is safe for concurrent use.
type Translator struct {
	maxDepth int
}

// New returns a Translator.
func New(options ...Option) *Translator {
	t := &Translator{maxDepth: DefaultMaxDepth}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Translate converts the tokens of one infix expression to instructions.
func (t *Translator) Translate(tokens []token.Token) ([]ir.Instruction, error) {
	if len(tokens) == 0 {
		return nil, &Error{Message: "empty expression"}
	}
	s := &state{tokens: tokens, maxDepth: t.maxDepth, out: []ir.Instruction{}}
	if err := s.parseExpr(LOWEST); err != nil {
		return nil, err
	}
	if tok, ok := s.peek(); ok {
		return nil, s.errorf(tok, "unexpected %s in expression", tok.Describe())
	}
	return s.out, nil
}

// Translate converts tokens using a default Translator.
func Translate(tokens []token.Token) ([]ir.Instruction, error) {
	return New().Translate(tokens)
}

type state struct {
	tokens   []token.Token
	pos      int
	out      []ir.Instruction
	depth    int
	maxDepth int
}

func (s *state) peek() (token.Token, bool) {
	if s.pos >= len(s.tokens) {
		return token.Token{}, false
	}
	return s.tokens[s.pos], true
}

// last returns the final token, used to position errors at the end of input.
func (s *state) last() token.Token {
	return s.tokens[len(s.tokens)-1]
}

func (s *state) emit(instr ir.Instruction) {
	s.out = append(s.out, instr)
}

func (s *state) parseExpr(precedence int) error {
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.maxDepth {
		tok, ok := s.peek()
		if !ok {
			tok = s.last()
		}
		return s.errorf(tok, "maximum nesting depth exceeded")
	}
	if err := s.parsePrefix(); err != nil {
		return err
	}
	for {
		tok, ok := s.peek()
		if !ok {
			return nil
		}
		p, isBinary := binaryPrecedence(tok)
		if !isBinary || p <= precedence {
			return nil
		}
		s.pos++
		if err := s.parseExpr(p); err != nil {
			return err
		}
		s.emit(ir.Operation{Op: tok.Literal})
	}
}

func (s *state) parsePrefix() error {
	tok, ok := s.peek()
	if !ok {
		return s.errorf(s.last(), "expected an operand after %s", s.last().Describe())
	}
	s.pos++
	switch {
	case tok.Kind == token.LITERAL:
		if tok.Value == nil {
			return s.errorf(tok, "literal %q has no value", tok.Literal)
		}
		s.emit(ir.Push{Value: tok.Value})
		return nil
	case tok.Kind == token.IDENT:
		if next, ok := s.peek(); ok && next.Equal(token.LParen) {
			s.pos++
			return s.parseCall(tok)
		}
		s.emit(ir.GetVariable{Name: tok.Literal})
		return nil
	case tok.Equal(token.LParen):
		if err := s.parseExpr(LOWEST); err != nil {
			return err
		}
		return s.expect(token.RParen, tok)
	case tok.Is(token.OPERATOR, "-"):
		s.emit(ir.Push{Value: object.NewInt(0)})
		if err := s.parseExpr(PREFIX); err != nil {
			return err
		}
		s.emit(ir.Operation{Op: "-"})
		return nil
	default:
		return s.errorf(tok, "unexpected %s in expression", tok.Describe())
	}
}

// parseCall handles name(arg, ...) with the opening parenthesis consumed.
func (s *state) parseCall(name token.Token) error {
	if next, ok := s.peek(); ok && next.Equal(token.RParen) {
		s.pos++
		s.emit(ir.Call{Name: name.Literal})
		return nil
	}
	argc := 0
	for {
		if err := s.parseExpr(LOWEST); err != nil {
			return err
		}
		argc++
		next, ok := s.peek()
		if !ok {
			return s.errorf(s.last(), "unterminated call to %s (expected \")\")", name.Literal)
		}
		s.pos++
		if next.Equal(token.Comma) {
			continue
		}
		if next.Equal(token.RParen) {
			break
		}
		return s.errorf(next, "unexpected %s in call to %s (expected \",\" or \")\")", next.Describe(), name.Literal)
	}
	s.emit(ir.Call{Name: name.Literal, ArgCount: argc})
	return nil
}

func (s *state) expect(expected token.Token, opening token.Token) error {
	tok, ok := s.peek()
	if !ok {
		return s.errorf(opening, "unclosed %s", opening.Describe())
	}
	if !tok.Equal(expected) {
		return s.errorf(tok, "unexpected %s in expression (expected %s)", tok.Describe(), expected.Describe())
	}
	s.pos++
	return nil
}

func (s *state) errorf(tok token.Token, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Tok: tok}
}

// Error describes an expression that cannot be translated.
type Error struct {
	Message string
	Tok     token.Token
}

func (e *Error) Error() string {
	return e.Message
}

// Token returns the token the error refers to. It is the zero Token for an
// empty expression.
func (e *Error) Token() token.Token {
	return e.Tok
}
