package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hokaccha/go-prettyjson"

	"github.com/risor-io/stackscript/dis"
	"github.com/risor-io/stackscript/internal/table"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/token"
)

func checkOutputFormat(format string) (string, error) {
	switch f := strings.ToLower(format); f {
	case "", "text":
		return "text", nil
	case "json":
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func getOutputJSON(value interface{}, useColor bool) ([]byte, error) {
	if !useColor {
		return json.MarshalIndent(value, "", "  ")
	}
	return prettyjson.Marshal(value)
}

// fileInstructions is the JSON form of one parsed file.
type fileInstructions struct {
	File         string      `json:"file"`
	Instructions ir.Sequence `json:"instructions"`
}

func writeInstructionsText(w io.Writer, instrs []ir.Instruction, useColor bool) {
	if len(instrs) == 0 {
		fmt.Fprintln(w, "(no instructions)")
		return
	}
	dis.Print(dis.Disassemble(instrs), w, useColor)
}

// jsonToken is the JSON form of a lexical token.
type jsonToken struct {
	Kind    token.Kind `json:"kind"`
	Literal string     `json:"literal,omitempty"`
	Line    int        `json:"line"`
	Column  int        `json:"column"`
}

func toJSONTokens(tokens []token.Token) []jsonToken {
	out := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, jsonToken{
			Kind:    tok.Kind,
			Literal: tok.Literal,
			Line:    tok.StartPosition.LineNumber(),
			Column:  tok.StartPosition.ColumnNumber(),
		})
	}
	return out
}

func writeTokensText(w io.Writer, tokens []token.Token) {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		pos := tok.StartPosition
		rows = append(rows, []string{
			fmt.Sprintf("%d:%d", pos.LineNumber(), pos.ColumnNumber()),
			string(tok.Kind),
			tok.String(),
		})
	}
	table.NewTable(w).
		WithHeader([]string{"POSITION", "KIND", "TOKEN"}).
		WithColumnAlignment([]table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}).
		WithHeaderAlignment([]table.Alignment{table.AlignCenter, table.AlignCenter, table.AlignCenter}).
		WithRows(rows).
		Render()
}
