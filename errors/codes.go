package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lex and parse errors
//   - E2xxx: IR verification errors
type ErrorCode string

const (
	// Lex and parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1002 ErrorCode = "E1002" // Unexpected end of input
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Unimplemented keyword
	E1006 ErrorCode = "E1006" // Expected identifier
	E1007 ErrorCode = "E1007" // Unclosed delimiter
	E1008 ErrorCode = "E1008" // Invalid number literal
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1010 ErrorCode = "E1010" // Unterminated string literal

	// IR verification errors (E2xxx)
	E2001 ErrorCode = "E2001" // Stack underflow
	E2002 ErrorCode = "E2002" // Unreachable instruction
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected token",
	E1002: "unexpected end of input",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "unimplemented keyword",
	E1006: "expected identifier",
	E1007: "unclosed delimiter",
	E1008: "invalid number literal",
	E1009: "maximum nesting depth exceeded",
	E1010: "unterminated string literal",
	E2001: "stack underflow",
	E2002: "unreachable instruction",
}

// Description returns the short description of the error code.
func (c ErrorCode) Description() string {
	return codeDescriptions[c]
}
