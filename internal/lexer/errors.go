package lexer

import (
	"fmt"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/token"
)

// Error is returned when the input cannot be tokenized.
type Error struct {
	Code     errors.ErrorCode
	Message  string
	Position token.Position
	Source   string
}

func (e *Error) Error() string {
	return e.Message
}

// Location returns the 1-indexed location of the error.
func (e *Error) Location() errors.SourceLocation {
	return errors.SourceLocation{
		Filename: e.Position.File,
		Line:     e.Position.LineNumber(),
		Column:   e.Position.ColumnNumber(),
		Source:   e.Source,
	}
}

// ToFormatted converts the error to a FormattedError for display.
func (e *Error) ToFormatted() *errors.FormattedError {
	loc := e.Location()
	return &errors.FormattedError{
		Code:     e.Code,
		Kind:     "syntax error",
		Message:  e.Message,
		Filename: loc.Filename,
		Line:     loc.Line,
		Column:   loc.Column,
		SourceLines: []errors.SourceLineEntry{
			{Number: loc.Line, Text: e.Source, IsMain: true},
		},
	}
}

func (e *Error) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

func (e *Error) String() string {
	return fmt.Sprintf("%s: %s", e.Location(), e.Message)
}
