package expr

import (
	"github.com/risor-io/stackscript/op"
	"github.com/risor-io/stackscript/token"
)

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	OR          // ||
	AND         // &&
	EQUALS      // == or !=
	LESSGREATER // > or <
	SUM         // + or -
	PRODUCT     // * or / or %
	PREFIX      // -X
)

// Precedences for each binary operation
var precedences = map[op.BinaryOpType]int{
	op.Or:                 OR,
	op.And:                AND,
	op.Equal:              EQUALS,
	op.NotEqual:           EQUALS,
	op.LessThan:           LESSGREATER,
	op.LessThanOrEqual:    LESSGREATER,
	op.GreaterThan:        LESSGREATER,
	op.GreaterThanOrEqual: LESSGREATER,
	op.Add:                SUM,
	op.Subtract:           SUM,
	op.Multiply:           PRODUCT,
	op.Divide:             PRODUCT,
	op.Modulo:             PRODUCT,
}

// binaryPrecedence returns the precedence of tok when it is a binary operator.
func binaryPrecedence(tok token.Token) (int, bool) {
	if tok.Kind != token.OPERATOR {
		return 0, false
	}
	bop, ok := op.LookupBinaryOp(tok.Literal)
	if !ok {
		return 0, false
	}
	p, ok := precedences[bop]
	return p, ok
}
