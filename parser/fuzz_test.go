package parser

import (
	"context"
	"testing"
	"time"

	"github.com/risor-io/stackscript/internal/lexer"
	"github.com/risor-io/stackscript/ir"
)

// FuzzParse checks that the parser never panics on arbitrary input. It must
// either return instructions that pass verification or an error.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"let x = 1;",
		"let x = a + b * (c - 1);",
		"fn f() { }",
		"fn f(a, b) { let c = a + b; }",
		"fn f(a,) { fn g() { g(); } }",
		"foo();",
		"foo(1, g(2), (3));",
		"1 + 2; x; -y;",
		`let s = "hi\n";`,
		"let b = true && false || x;",
		"return 1;",
		"}",
		"let = ;",
		"fn (",
		"foo(1, ",
		"((((",
		"let x = ((1);",
		"/* comment */ let x = 1; // trailing",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		tokens, err := lexer.Tokenize(input)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		instrs, err := Parse(ctx, tokens)
		if err != nil {
			if _, ok := err.(ParserError); !ok && ctx.Err() == nil {
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
			return
		}
		if err := ir.Verify(instrs); err != nil {
			t.Fatalf("parsed %q into invalid instructions: %v", input, err)
		}
	})
}
