// Package dis supports analysis of stackscript instruction sequences by
// listing them as a table. Function bodies are listed after the top-level
// sequence, each under its own scope.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/risor-io/stackscript/internal/table"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/object"
)

// MainScope names the top-level sequence.
const MainScope = "<main>"

// Instruction represents a single listed instruction.
type Instruction struct {
	// Scope is MainScope or the dotted path of the enclosing functions.
	Scope      string
	Offset     int
	Name       string
	Operands   []int
	Annotation string
	Value      object.Object
}

// Disassemble flattens a sequence into listing rows. Each function body
// follows the sequence that declares it.
func Disassemble(instrs []ir.Instruction) []Instruction {
	var out []Instruction
	disassemble(MainScope, instrs, &out)
	return out
}

func disassemble(scope string, instrs []ir.Instruction, out *[]Instruction) {
	var functions []ir.DeclareFunction
	for offset, instr := range instrs {
		row := Instruction{
			Scope:  scope,
			Offset: offset,
			Name:   instr.Code().String(),
		}
		switch instr := instr.(type) {
		case ir.Push:
			row.Value = instr.Value
		case ir.GetVariable:
			row.Annotation = instr.Name
		case ir.DeclareVariable:
			row.Annotation = instr.Name
		case ir.Operation:
			row.Annotation = instr.Op
		case ir.Call:
			row.Operands = []int{instr.ArgCount}
			row.Annotation = instr.Name
		case ir.DeclareFunction:
			row.Operands = []int{len(instr.Params), len(instr.Body)}
			row.Annotation = fmt.Sprintf("%s(%s)", instr.Name, strings.Join(instr.Params, ", "))
			functions = append(functions, instr)
		}
		*out = append(*out, row)
	}
	for _, fn := range functions {
		disassemble(childScope(scope, fn.Name), fn.Body, out)
	}
}

func childScope(parent, name string) string {
	if parent == MainScope {
		return name
	}
	return parent + "." + name
}

type palette struct {
	bold   *color.Color
	number *color.Color
	str    *color.Color
	boolc  *color.Color
	name   *color.Color
	scope  *color.Color
	on     bool
}

func newPalette(useColor bool) *palette {
	p := &palette{
		bold:   color.New(color.Bold),
		number: color.New(color.FgYellow),
		str:    color.New(color.FgGreen),
		boolc:  color.New(color.FgMagenta),
		name:   color.New(color.FgHiCyan),
		scope:  color.New(color.FgHiBlack),
		on:     useColor,
	}
	if useColor {
		for _, c := range []*color.Color{p.bold, p.number, p.str, p.boolc, p.name, p.scope} {
			c.EnableColor()
		}
	}
	return p
}

func (p *palette) paint(c *color.Color, s string) string {
	if !p.on {
		return s
	}
	return c.Sprint(s)
}

// Print a table of the given instructions to the given writer.
func Print(instructions []Instruction, writer io.Writer, useColor bool) {
	p := newPalette(useColor)
	var lines [][]string
	for _, instr := range instructions {
		values := []string{
			p.paint(p.scope, instr.Scope),
			fmt.Sprintf("%d", instr.Offset),
			p.paint(p.bold, instr.Name),
			formatOperands(instr.Operands),
		}
		if instr.Value != nil {
			values = append(values, p.formatValue(instr.Value))
		} else {
			values = append(values, p.paint(p.name, instr.Annotation))
		}
		lines = append(lines, values)
	}

	table.NewTable(writer).
		WithHeader([]string{"SCOPE", "OFFSET", "OPCODE", "OPERANDS", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignLeft,
			table.AlignRight,
			table.AlignLeft,
			table.AlignRight,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

func (p *palette) formatValue(value object.Object) string {
	switch value.Type() {
	case object.INT, object.FLOAT:
		return p.paint(p.number, value.Inspect())
	case object.STRING:
		s := value.Inspect()
		if len(s) > 80 {
			s = s[:77] + "..."
		}
		return p.paint(p.str, s)
	case object.BOOL:
		return p.paint(p.boolc, value.Inspect())
	default:
		return value.Inspect()
	}
}

func formatOperands(ops []int) string {
	var sb strings.Builder
	for i, op := range ops {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%d", op))
	}
	return sb.String()
}
