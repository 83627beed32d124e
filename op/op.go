// Package op defines the opcodes of the stackscript instruction set and the
// stack effect of each one.
package op

// Code is an integer opcode that identifies an instruction variant.
type Code uint8

const (
	Invalid Code = 0

	// Stack
	Push Code = 1
	Pop  Code = 2

	// Variables
	GetVariable     Code = 10
	DeclareVariable Code = 11

	// Operations
	Operation Code = 20

	// Functions
	Call            Code = 30
	Ret             Code = 31
	DeclareFunction Code = 32
)

// Variadic marks a stack effect that depends on the instruction's operands.
const Variadic = -1

// Info contains information about an opcode.
type Info struct {
	Code Code
	Name string

	// Pops is the number of values consumed, or Variadic.
	Pops int

	// Pushes is the maximum number of values produced.
	Pushes int

	// Terminal is true when the instruction ends execution of its sequence.
	Terminal bool
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op       Code
		name     string
		pops     int
		pushes   int
		terminal bool
	}
	ops := []opInfo{
		{Push, "PUSH", 0, 1, false},
		{Pop, "POP", 1, 0, false},
		{GetVariable, "GET_VARIABLE", 0, 1, false},
		{DeclareVariable, "DECLARE_VARIABLE", 1, 0, false},
		{Operation, "OPERATION", 2, 1, false},
		{Call, "CALL", Variadic, 1, false},
		{Ret, "RET", 0, 0, true},
		{DeclareFunction, "DECLARE_FUNCTION", 0, 0, false},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Code:     o.op,
			Name:     o.name,
			Pops:     o.pops,
			Pushes:   o.pushes,
			Terminal: o.terminal,
		}
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	return infos[op]
}

func (c Code) String() string {
	if name := infos[c].Name; name != "" {
		return name
	}
	return "INVALID"
}

// BinaryOpType describes a binary operation, such as addition, that pops two
// operands and pushes one result.
type BinaryOpType uint8

const (
	Add                BinaryOpType = 1
	Subtract           BinaryOpType = 2
	Multiply           BinaryOpType = 3
	Divide             BinaryOpType = 4
	Modulo             BinaryOpType = 5
	Equal              BinaryOpType = 10
	NotEqual           BinaryOpType = 11
	LessThan           BinaryOpType = 12
	LessThanOrEqual    BinaryOpType = 13
	GreaterThan        BinaryOpType = 14
	GreaterThanOrEqual BinaryOpType = 15
	And                BinaryOpType = 20
	Or                 BinaryOpType = 21
)

var binaryOpSymbols = map[BinaryOpType]string{
	Add:                "+",
	Subtract:           "-",
	Multiply:           "*",
	Divide:             "/",
	Modulo:             "%",
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
	And:                "&&",
	Or:                 "||",
}

var binaryOpsBySymbol = func() map[string]BinaryOpType {
	m := make(map[string]BinaryOpType, len(binaryOpSymbols))
	for bop, sym := range binaryOpSymbols {
		m[sym] = bop
	}
	return m
}()

// Symbol returns the operator text of the operation, e.g. "+".
func (bop BinaryOpType) Symbol() string {
	return binaryOpSymbols[bop]
}

func (bop BinaryOpType) String() string {
	switch bop {
	case Add:
		return "ADD"
	case Subtract:
		return "SUBTRACT"
	case Multiply:
		return "MULTIPLY"
	case Divide:
		return "DIVIDE"
	case Modulo:
		return "MODULO"
	case Equal:
		return "EQUAL"
	case NotEqual:
		return "NOT_EQUAL"
	case LessThan:
		return "LESS_THAN"
	case LessThanOrEqual:
		return "LESS_THAN_OR_EQUAL"
	case GreaterThan:
		return "GREATER_THAN"
	case GreaterThanOrEqual:
		return "GREATER_THAN_OR_EQUAL"
	case And:
		return "AND"
	case Or:
		return "OR"
	default:
		return ""
	}
}

// LookupBinaryOp returns the binary operation for the given operator text.
func LookupBinaryOp(symbol string) (BinaryOpType, bool) {
	bop, ok := binaryOpsBySymbol[symbol]
	return bop, ok
}
