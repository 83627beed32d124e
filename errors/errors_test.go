package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceLocation(t *testing.T) {
	require.Equal(t, "main.stk:3:7", SourceLocation{Filename: "main.stk", Line: 3, Column: 7}.String())
	require.Equal(t, "3:7", SourceLocation{Line: 3, Column: 7}.String())
	require.True(t, SourceLocation{}.IsZero())
}

func TestFormatPlain(t *testing.T) {
	f := NewFormatter(false)
	out := f.Format(&FormattedError{
		Code:      E1001,
		Kind:      "parse error",
		Message:   `unexpected "=" while parsing let statement (expected identifier)`,
		Filename:  "main.stk",
		Line:      1,
		Column:    5,
		EndColumn: 5,
		SourceLines: []SourceLineEntry{
			{Number: 1, Text: "let = 2;", IsMain: true},
		},
		Hint: "name the variable",
	})
	expected := strings.Join([]string{
		`parse error[E1001]: unexpected "=" while parsing let statement (expected identifier)`,
		"  --> main.stk:1:5",
		"   |",
		" 1 | let = 2;",
		"   |     ^",
		"   = hint: name the variable",
		"",
	}, "\n")
	require.Equal(t, expected, out)
}

func TestFormatWithoutLocation(t *testing.T) {
	out := NewFormatter(false).Format(&FormattedError{Message: "boom"})
	require.Equal(t, "error: boom\n", out)
}

func TestFormatColor(t *testing.T) {
	out := NewFormatter(true).Format(&FormattedError{Kind: "syntax error", Message: "bad"})
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "bad")
}

func TestFormatMultiple(t *testing.T) {
	f := NewFormatter(false)
	out := f.FormatMultiple([]*FormattedError{
		{Message: "first"},
		{Message: "second"},
	})
	require.Contains(t, out, "error[1/2]: first")
	require.Contains(t, out, "error[2/2]: second")
	require.Contains(t, out, "found 2 errors")
	require.Equal(t, "", f.FormatMultiple(nil))
}

type friendly struct{}

func (friendly) Error() string                { return "raw" }
func (friendly) FriendlyErrorMessage() string { return "friendly" }

type formattable struct{}

func (formattable) Error() string { return "raw" }
func (formattable) ToFormatted() *FormattedError {
	return &FormattedError{Kind: "syntax error", Message: "formatted"}
}

func TestRender(t *testing.T) {
	require.Equal(t, "syntax error: formatted\n", Render(formattable{}, false))
	require.Equal(t, "friendly", Render(friendly{}, false))
	require.Equal(t, "plain", Render(fmt.Errorf("plain"), false))
}

func TestCodeDescription(t *testing.T) {
	require.Equal(t, "unexpected end of input", E1002.Description())
	require.Equal(t, "", ErrorCode("E9999").Description())
}
