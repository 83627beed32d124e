package ir

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sequence is an instruction sequence with a JSON encoding of the form
// [{"op": "PUSH", "value": 2}, {"op": "DECLARE_VARIABLE", "name": "x"}].
type Sequence []Instruction

func (s Sequence) MarshalJSON() ([]byte, error) {
	items := make([]interface{}, 0, len(s))
	for _, instr := range s {
		item, err := encode(instr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return json.Marshal(items)
}

func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, instr := range s {
		parts = append(parts, instr.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func encode(instr Instruction) (interface{}, error) {
	name := instr.Code().String()
	switch instr := instr.(type) {
	case Push:
		return struct {
			Op    string      `json:"op"`
			Value interface{} `json:"value"`
		}{name, instr.Value}, nil
	case GetVariable:
		return namedOp{name, instr.Name}, nil
	case DeclareVariable:
		return namedOp{name, instr.Name}, nil
	case Operation:
		return struct {
			Op       string `json:"op"`
			Operator string `json:"operator"`
		}{name, instr.Op}, nil
	case Call:
		return struct {
			Op       string `json:"op"`
			Name     string `json:"name"`
			ArgCount int    `json:"arg_count"`
		}{name, instr.Name, instr.ArgCount}, nil
	case Ret, Pop:
		return struct {
			Op string `json:"op"`
		}{name}, nil
	case DeclareFunction:
		params := instr.Params
		if params == nil {
			params = []string{}
		}
		return struct {
			Op     string   `json:"op"`
			Name   string   `json:"name"`
			Params []string `json:"params"`
			Body   Sequence `json:"body"`
		}{name, instr.Name, params, Sequence(instr.Body)}, nil
	default:
		return nil, fmt.Errorf("ir: cannot encode instruction %T", instr)
	}
}

type namedOp struct {
	Op   string `json:"op"`
	Name string `json:"name"`
}
