// Package lexer converts stackscript source text into tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/object"
	"github.com/risor-io/stackscript/token"
)

// Option is a configuration function for a Lexer.
type Option func(*Lexer)

// WithFilename sets the file name for the Lexer.
func WithFilename(filename string) Option {
	return func(l *Lexer) {
		l.file = filename
	}
}

// Lexer holds our object-state.
type Lexer struct {
	input     string
	position  int  // byte offset of ch
	next      int  // byte offset after ch
	ch        rune // current character
	line      int
	lineStart int
	file      string
	eof       bool // input exhausted; ch is not a real character
}

// New returns a Lexer for the given input.
func New(input string, options ...Option) *Lexer {
	l := &Lexer{input: input}
	for _, opt := range options {
		opt(l)
	}
	l.readChar()
	if strings.HasPrefix(input, "#!") {
		l.skipLine()
	}
	return l
}

// Tokenize lexes the whole input and returns its tokens, ending with EOF.
func Tokenize(input string, options ...Option) ([]token.Token, error) {
	l := New(input, options...)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Filename returns the file name given to the lexer, if any.
func (l *Lexer) Filename() string {
	return l.file
}

// SetFilename sets the file name recorded in token positions.
func (l *Lexer) SetFilename(filename string) {
	l.file = filename
}

// Position returns the position of the current character.
func (l *Lexer) Position() token.Position {
	return token.Position{
		Char:      l.position,
		LineStart: l.lineStart,
		Line:      l.line,
		Column:    l.position - l.lineStart,
		File:      l.file,
	}
}

// Next returns the next token. Once the input is exhausted every call returns
// an EOF token.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	start := l.Position()
	if l.eof {
		return l.finish(token.NewEOF(), start, start), nil
	}
	ch := l.ch
	switch {
	case isIdentStart(ch):
		return l.readIdentifier(start), nil
	case isDigit(ch):
		return l.readNumber(start)
	case ch == '"':
		return l.readString(start)
	}

	switch ch {
	case ';', ',', '=', '{', '}':
		if ch == '=' && l.peekChar() == '=' {
			return l.readOperator(start, 2), nil
		}
		l.readChar()
		return l.finish(token.NewSymbol(ch), start, start), nil
	case '(', ')', '+', '-', '*', '/', '%':
		return l.readOperator(start, 1), nil
	case '<', '>':
		if l.peekChar() == '=' {
			return l.readOperator(start, 2), nil
		}
		return l.readOperator(start, 1), nil
	case '!':
		if l.peekChar() == '=' {
			return l.readOperator(start, 2), nil
		}
	case '&', '|':
		if l.peekChar() == ch {
			return l.readOperator(start, 2), nil
		}
	}
	return token.Token{}, l.errorf(errors.E1003, start, "invalid character: %q", ch)
}

// GetLineText returns the full source line containing the token.
func (l *Lexer) GetLineText(tok token.Token) string {
	start := tok.StartPosition.LineStart
	if start < 0 || start > len(l.input) {
		return ""
	}
	end := strings.IndexByte(l.input[start:], '\n')
	if end < 0 {
		return strings.TrimRight(l.input[start:], "\r")
	}
	return strings.TrimRight(l.input[start:start+end], "\r")
}

func (l *Lexer) finish(tok token.Token, start, end token.Position) token.Token {
	tok.StartPosition = start
	tok.EndPosition = end
	return tok
}

func (l *Lexer) readChar() {
	if l.next >= len(l.input) {
		l.position = len(l.input)
		l.ch = 0
		l.eof = true
		return
	}
	if l.ch == '\n' {
		l.line++
		l.lineStart = l.next
	}
	r, size := utf8.DecodeRuneInString(l.input[l.next:])
	l.position = l.next
	l.next += size
	l.ch = r
}

func (l *Lexer) peekChar() rune {
	if l.next >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.next:])
	return r
}

func (l *Lexer) skipLine() {
	for l.ch != '\n' && !l.eof {
		l.readChar()
	}
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			l.skipLine()
		case l.ch == '/' && l.peekChar() == '*':
			start := l.Position()
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') {
				if l.eof {
					return l.errorf(errors.E1007, start, "unterminated multiline comment")
				}
				l.readChar()
			}
			l.readChar()
			l.readChar()
		default:
			return nil
		}
	}
}

func (l *Lexer) readOperator(start token.Position, width int) token.Token {
	var sb strings.Builder
	var end token.Position
	for i := 0; i < width; i++ {
		end = l.Position()
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return l.finish(token.NewOperator(sb.String()), start, end)
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	var end token.Position
	for isIdentStart(l.ch) || isDigit(l.ch) {
		end = l.Position()
		l.readChar()
	}
	text := l.input[start.Char:l.position]
	var tok token.Token
	switch text {
	case "true":
		tok = token.NewLiteral(object.True)
	case "false":
		tok = token.NewLiteral(object.False)
	default:
		if kw, ok := token.LookupKeyword(text); ok {
			tok = token.NewKeyword(kw)
		} else {
			tok = token.NewIdent(text)
		}
	}
	return l.finish(tok, start, end)
}

func (l *Lexer) readNumber(start token.Position) (token.Token, error) {
	var end token.Position
	isFloat := false
	for {
		if isDigit(l.ch) {
			end = l.Position()
			l.readChar()
			continue
		}
		if l.ch == '.' && !isFloat && isDigit(l.peekChar()) {
			isFloat = true
			end = l.Position()
			l.readChar()
			continue
		}
		break
	}
	if l.ch == '.' || isIdentStart(l.ch) {
		bad := l.input[start.Char:l.next]
		return token.Token{}, l.errorf(errors.E1008, start, "invalid decimal literal: %s", bad)
	}
	text := l.input[start.Char:l.position]
	var value object.Object
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, l.errorf(errors.E1008, start, "invalid decimal literal: %s", text)
		}
		value = object.NewFloat(f)
	} else {
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.Token{}, l.errorf(errors.E1008, start, "invalid decimal literal: %s", text)
		}
		value = object.NewInt(i)
	}
	tok := token.NewLiteral(value)
	tok.Literal = text
	return l.finish(tok, start, end), nil
}

func (l *Lexer) readString(start token.Position) (token.Token, error) {
	var sb strings.Builder
	l.readChar() // opening quote
	for l.ch != '"' {
		if l.eof || l.ch == '\n' {
			return token.Token{}, l.errorf(errors.E1010, start, "unterminated string literal")
		}
		switch l.ch {
		case '\\':
			l.readChar()
			if l.eof {
				return token.Token{}, l.errorf(errors.E1010, start, "unterminated string literal")
			}
			switch l.ch {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '\\', '"':
				sb.WriteRune(l.ch)
			default:
				return token.Token{}, l.errorf(errors.E1003, l.Position(), "invalid escape sequence: \\%c", l.ch)
			}
		default:
			sb.WriteRune(l.ch)
		}
		l.readChar()
	}
	end := l.Position()
	l.readChar() // closing quote
	tok := token.NewLiteral(object.NewString(sb.String()))
	tok.Literal = l.input[start.Char:l.position]
	return l.finish(tok, start, end), nil
}

func (l *Lexer) errorf(code errors.ErrorCode, pos token.Position, format string, args ...interface{}) *Error {
	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: pos,
		Source:   l.GetLineText(token.Token{StartPosition: pos}),
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
