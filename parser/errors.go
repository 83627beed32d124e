package parser

import (
	stderrors "errors"
	"fmt"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/token"
)

// ErrorKind identifies the category of a parser error.
type ErrorKind int

const (
	// Syntax is a generic grammar violation.
	Syntax ErrorKind = iota
	// UnexpectedEOF means the token stream ended where a token was required.
	UnexpectedEOF
	// UnexpectedToken means a required token did not match.
	UnexpectedToken
	// UnimplementedKeyword means a reserved keyword appeared in statement
	// position without a statement handler.
	UnimplementedKeyword
)

func (k ErrorKind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnexpectedToken:
		return "unexpected token"
	case UnimplementedKeyword:
		return "unimplemented keyword"
	default:
		return "error"
	}
}

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. If `Cause` is set, `Message` will be ignored.
type ErrorOpts struct {
	Kind          ErrorKind
	Code          errors.ErrorCode
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Hint          string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		kind:          opts.Kind,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		hint:          opts.Hint,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Kind() ErrorKind
	Code() errors.ErrorCode
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Hint() string
	Error() string
	ToFormatted() *errors.FormattedError
	errors.FriendlyError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	kind ErrorKind
	// Diagnostic code, e.g. E1001
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input
	startPosition token.Position
	// End position of the error in the input
	endPosition token.Position
	// Relevant line of source code text, when the source is known
	sourceCode string
	// Suggested fix, if any
	hint string
}

func (e *BaseParserError) Error() string {
	msg := e.message
	if e.cause != nil {
		msg = e.cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.typeName(), msg)
}

// typeName is the label used in messages: "syntax error" or "parse error".
func (e *BaseParserError) typeName() string {
	if e.kind == Syntax {
		return "syntax error"
	}
	return "parse error"
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}
	formatted := &errors.FormattedError{
		Code:     e.code,
		Kind:     e.typeName(),
		Message:  message,
		Filename: e.file,
		Hint:     e.hint,
	}
	if e.startPosition.IsValid() || e.sourceCode != "" {
		formatted.Line = e.startPosition.LineNumber()
		formatted.Column = e.startPosition.ColumnNumber()
		formatted.EndColumn = e.endPosition.ColumnNumber()
	}
	if e.sourceCode != "" {
		formatted.SourceLines = []errors.SourceLineEntry{
			{Number: formatted.Line, Text: e.sourceCode, IsMain: true},
		}
	}
	return formatted
}

func (e *BaseParserError) Kind() ErrorKind {
	return e.kind
}

func (e *BaseParserError) Code() errors.ErrorCode {
	return e.code
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

func (e *BaseParserError) Message() string {
	return e.message
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Hint() string {
	return e.hint
}

func (e *BaseParserError) base() *BaseParserError {
	return e
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

// UnexpectedEOFError is returned when the token stream ends, or reaches its
// end-of-input marker, where another token was required.
type UnexpectedEOFError struct {
	*BaseParserError
	// Expected describes what was required instead.
	Expected string
}

// UnexpectedTokenError is returned when a required token did not match.
type UnexpectedTokenError struct {
	*BaseParserError
	Expected string
	Got      token.Token
}

// UnimplementedKeywordError is returned when a keyword without a statement
// handler appears in statement position.
type UnimplementedKeywordError struct {
	*BaseParserError
	Keyword token.Keyword
}

// SyntaxError is a generic grammar violation, such as a malformed parameter
// list or an expression the translator rejected.
type SyntaxError struct {
	*BaseParserError
}

// NewSyntaxError returns a new SyntaxError populated with the given error data
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.Kind = Syntax
	if opts.Code == "" {
		opts.Code = errors.E1003
	}
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// IsKind reports whether err, or an error it wraps, is a parser error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe ParserError
	if !stderrors.As(err, &pe) {
		return false
	}
	return pe.Kind() == kind
}
