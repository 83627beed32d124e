// Package token defines the lexical tokens consumed by the stackscript parser.
package token

import (
	"fmt"
	"sort"

	"github.com/risor-io/stackscript/object"
)

// Kind identifies which variant of the closed token set a Token is.
type Kind string

// Token kinds
const (
	KEYWORD  Kind = "KEYWORD"
	IDENT    Kind = "IDENT"
	OPERATOR Kind = "OPERATOR"
	SYMBOL   Kind = "SYMBOL"
	LITERAL  Kind = "LITERAL"
	EOF      Kind = "EOF"
)

// Keyword is the tag attached to KEYWORD tokens at lex time.
type Keyword string

// Reserved keywords
const (
	LET    Keyword = "let"
	FN     Keyword = "fn"
	RETURN Keyword = "return"
	IF     Keyword = "if"
	ELSE   Keyword = "else"
	WHILE  Keyword = "while"
)

var keywords = map[string]Keyword{
	"let":    LET,
	"fn":     FN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
}

// LookupKeyword reports whether the identifier is a reserved keyword.
func LookupKeyword(identifier string) (Keyword, bool) {
	kw, ok := keywords[identifier]
	return kw, ok
}

// Keywords returns the reserved keywords in sorted order.
func Keywords() []string {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Position points to a particular location in an input string.
type Position struct {
	Char      int    // byte offset within the file
	LineStart int    // byte offset of the start of the current line
	Line      int    // 0-indexed line number
	Column    int    // 0-indexed column number
	File      string // filename
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// IsValid returns true if this position has been set.
func (p Position) IsValid() bool {
	return p.File != "" || p.Line > 0 || p.Column > 0 || p.Char > 0
}

// NoPos is the zero value Position, representing an invalid/unset position.
var NoPos = Position{}

// Token represents one token lexed from the input source code.
type Token struct {
	Kind Kind

	// Literal is the source text of the token. For SYMBOL tokens it is the
	// single symbol character.
	Literal string

	// Keyword is set when Kind is KEYWORD.
	Keyword Keyword

	// Value is set when Kind is LITERAL.
	Value object.Object

	StartPosition Position
	EndPosition   Position
}

// Equal reports whether two tokens are structurally equal. Positions are
// ignored.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind || t.Literal != other.Literal {
		return false
	}
	if t.Kind == LITERAL {
		return object.Equals(t.Value, other.Value)
	}
	return t.Keyword == other.Keyword
}

// Is reports whether the token is the given operator or symbol text.
func (t Token) Is(kind Kind, literal string) bool {
	return t.Kind == kind && t.Literal == literal
}

// IsKeyword reports whether the token is the given keyword.
func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == KEYWORD && t.Keyword == kw
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case SYMBOL:
		return fmt.Sprintf("Symbol(%q)", t.Literal)
	case OPERATOR:
		return fmt.Sprintf("Operator(%q)", t.Literal)
	case KEYWORD:
		return fmt.Sprintf("Keyword(%s)", t.Literal)
	case IDENT:
		return fmt.Sprintf("Identifier(%s)", t.Literal)
	case LITERAL:
		if t.Value != nil {
			return fmt.Sprintf("Literal(%s)", t.Value.Inspect())
		}
		return fmt.Sprintf("Literal(%s)", t.Literal)
	default:
		return string(t.Kind)
	}
}

// Describe returns a short human readable description used in error messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Literal)
	case KEYWORD:
		return fmt.Sprintf("keyword %q", t.Literal)
	default:
		if t.Literal == "" {
			return string(t.Kind)
		}
		return fmt.Sprintf("%q", t.Literal)
	}
}

// NewKeyword returns a KEYWORD token for the given keyword.
func NewKeyword(kw Keyword) Token {
	return Token{Kind: KEYWORD, Literal: string(kw), Keyword: kw}
}

// NewIdent returns an IDENT token.
func NewIdent(name string) Token {
	return Token{Kind: IDENT, Literal: name}
}

// NewOperator returns an OPERATOR token.
func NewOperator(op string) Token {
	return Token{Kind: OPERATOR, Literal: op}
}

// NewSymbol returns a SYMBOL token.
func NewSymbol(ch rune) Token {
	return Token{Kind: SYMBOL, Literal: string(ch)}
}

// NewLiteral returns a LITERAL token holding the given value.
func NewLiteral(value object.Object) Token {
	lit := ""
	if value != nil {
		lit = value.Inspect()
	}
	return Token{Kind: LITERAL, Literal: lit, Value: value}
}

// NewEOF returns the end-of-input marker.
func NewEOF() Token {
	return Token{Kind: EOF}
}

// Frequently compared tokens.
var (
	LParen    = NewOperator("(")
	RParen    = NewOperator(")")
	Semicolon = NewSymbol(';')
	Comma     = NewSymbol(',')
	Assign    = NewSymbol('=')
	LBrace    = NewSymbol('{')
	RBrace    = NewSymbol('}')
)
