package ir

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/op"
)

// mainScope names the top-level sequence in verification errors.
const mainScope = "<main>"

// UnderflowError reports an instruction that consumes more values than the
// stack holds at that point.
type UnderflowError struct {
	Scope       string
	Index       int
	Instruction Instruction
	Depth       int
}

func (e *UnderflowError) Error() string {
	pops, _ := e.Instruction.StackEffect()
	return fmt.Sprintf("%s[%d]: %s consumes %d value(s) but the stack holds %d",
		e.Scope, e.Index, e.Instruction, pops, e.Depth)
}

// Code returns the diagnostic code for stack underflow.
func (e *UnderflowError) Code() errors.ErrorCode {
	return errors.E2001
}

// UnreachableError reports instructions that follow a terminal instruction.
type UnreachableError struct {
	Scope string
	Index int
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s[%d]: unreachable instruction after %s", e.Scope, e.Index, op.Ret)
}

// Code returns the diagnostic code for unreachable instructions.
func (e *UnreachableError) Code() errors.ErrorCode {
	return errors.E2002
}

// Verify simulates the stack depth of a sequence, including nested function
// bodies, and returns every violation found. Each function body starts with
// an empty stack. The returned error is nil or a *multierror.Error.
func Verify(instrs []Instruction) error {
	var result *multierror.Error
	verify(mainScope, instrs, &result)
	return result.ErrorOrNil()
}

func verify(scope string, instrs []Instruction, result **multierror.Error) {
	depth := 0
	for i, instr := range instrs {
		pops, pushes := instr.StackEffect()
		if pops > depth {
			*result = multierror.Append(*result, &UnderflowError{
				Scope:       scope,
				Index:       i,
				Instruction: instr,
				Depth:       depth,
			})
			depth = 0
		} else {
			depth -= pops
		}
		depth += pushes
		if fn, ok := instr.(DeclareFunction); ok {
			verify(fn.Name, fn.Body, result)
		}
		if op.GetInfo(instr.Code()).Terminal && i < len(instrs)-1 {
			*result = multierror.Append(*result, &UnreachableError{Scope: scope, Index: i + 1})
			return
		}
	}
}
