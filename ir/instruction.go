// Package ir defines the flat, stack-oriented instruction sequence produced by
// the stackscript parser.
//
// A program is an ordered []Instruction executed left to right against an
// evaluation stack. Sequences are flat except at function boundaries, where
// DeclareFunction carries the body as a nested sequence.
package ir

import (
	"fmt"
	"strings"

	"github.com/risor-io/stackscript/object"
	"github.com/risor-io/stackscript/op"
)

// Instruction is one of the closed set of IR variants declared in this
// package.
type Instruction interface {
	// Code returns the opcode of the instruction.
	Code() op.Code

	// StackEffect returns the number of values the instruction consumes and
	// the maximum number it produces.
	StackEffect() (pops, pushes int)

	String() string

	instruction()
}

// Push places a literal value on the stack.
type Push struct {
	Value object.Object
}

// GetVariable loads the named variable onto the stack.
type GetVariable struct {
	Name string
}

// DeclareVariable binds the value on top of the stack to a name.
type DeclareVariable struct {
	Name string
}

// Operation pops two operands and pushes the result of the binary operator.
type Operation struct {
	Op string
}

// Call invokes a function by name with ArgCount arguments taken from the
// stack. It produces at most one value.
type Call struct {
	Name     string
	ArgCount int
}

// Ret returns from the enclosing function body.
type Ret struct{}

// Pop discards the value on top of the stack.
type Pop struct{}

// DeclareFunction binds a name to an instruction sequence. Params lists the
// declared parameter names in order; binding them is left to the evaluator.
type DeclareFunction struct {
	Name   string
	Params []string
	Body   []Instruction
}

func (Push) Code() op.Code            { return op.Push }
func (GetVariable) Code() op.Code     { return op.GetVariable }
func (DeclareVariable) Code() op.Code { return op.DeclareVariable }
func (Operation) Code() op.Code       { return op.Operation }
func (Call) Code() op.Code            { return op.Call }
func (Ret) Code() op.Code             { return op.Ret }
func (Pop) Code() op.Code             { return op.Pop }
func (DeclareFunction) Code() op.Code { return op.DeclareFunction }

func (i Push) StackEffect() (int, int)            { return fixedEffect(i.Code()) }
func (i GetVariable) StackEffect() (int, int)     { return fixedEffect(i.Code()) }
func (i DeclareVariable) StackEffect() (int, int) { return fixedEffect(i.Code()) }
func (i Operation) StackEffect() (int, int)       { return fixedEffect(i.Code()) }
func (i Ret) StackEffect() (int, int)             { return fixedEffect(i.Code()) }
func (i Pop) StackEffect() (int, int)             { return fixedEffect(i.Code()) }
func (i DeclareFunction) StackEffect() (int, int) { return fixedEffect(i.Code()) }

func (i Call) StackEffect() (int, int) {
	return i.ArgCount, op.GetInfo(op.Call).Pushes
}

func fixedEffect(code op.Code) (int, int) {
	info := op.GetInfo(code)
	return info.Pops, info.Pushes
}

func (Push) instruction()            {}
func (GetVariable) instruction()     {}
func (DeclareVariable) instruction() {}
func (Operation) instruction()       {}
func (Call) instruction()            {}
func (Ret) instruction()             {}
func (Pop) instruction()             {}
func (DeclareFunction) instruction() {}

func (i Push) String() string {
	if i.Value == nil {
		return "Push(<nil>)"
	}
	return fmt.Sprintf("Push(%s)", i.Value.Inspect())
}

func (i GetVariable) String() string {
	return fmt.Sprintf("GetVariable(%q)", i.Name)
}

func (i DeclareVariable) String() string {
	return fmt.Sprintf("DeclareVariable(%q)", i.Name)
}

func (i Operation) String() string {
	return fmt.Sprintf("Operation(%q)", i.Op)
}

func (i Call) String() string {
	return fmt.Sprintf("Call(%q, %d)", i.Name, i.ArgCount)
}

func (Ret) String() string {
	return "Ret()"
}

func (Pop) String() string {
	return "Pop()"
}

func (i DeclareFunction) String() string {
	body := make([]string, 0, len(i.Body))
	for _, instr := range i.Body {
		body = append(body, instr.String())
	}
	return fmt.Sprintf("DeclareFunction(%q, [%s])", i.Name, strings.Join(body, ", "))
}

// Equal reports whether two instruction sequences are structurally equal.
// Nil and empty sequences compare equal.
func Equal(a, b []Instruction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalInstruction(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalInstruction(a, b Instruction) bool {
	switch a := a.(type) {
	case Push:
		b, ok := b.(Push)
		return ok && object.Equals(a.Value, b.Value)
	case DeclareFunction:
		b, ok := b.(DeclareFunction)
		if !ok || a.Name != b.Name || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	default:
		return a == b
	}
}
