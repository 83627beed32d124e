package parser

import (
	"github.com/risor-io/stackscript/errors"
	"github.com/risor-io/stackscript/ir"
	"github.com/risor-io/stackscript/token"
)

// parseLet handles `let name = expr;`.
func (p *Parser) parseLet() ([]ir.Instruction, error) {
	p.cur.consume() // let
	name, err := p.expectIdent("let statement")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign, "let statement"); err != nil {
		return nil, err
	}
	exprTokens, err := p.extractUntil("let statement", token.Semicolon)
	if err != nil {
		return nil, err
	}
	value, err := p.translate("let statement", exprTokens)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon, "let statement"); err != nil {
		return nil, err
	}
	return append(value, ir.DeclareVariable{Name: name.Literal}), nil
}

// parseFunc handles `fn name(params) { body }`.
func (p *Parser) parseFunc() ([]ir.Instruction, error) {
	fnTok, _ := p.cur.consume()
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		return nil, p.syntaxError(fnTok, errors.E1009, "maximum function nesting depth exceeded (%d)", p.maxDepth)
	}
	name, err := p.expectIdent("function declaration")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen, "function declaration"); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace, "function declaration"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("function body")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace, "function body"); err != nil {
		return nil, err
	}
	p.logger.Debug().
		Str("function", name.Literal).
		Strs("params", params).
		Int("instructions", len(body)).
		Msg("parsed function")
	return []ir.Instruction{
		ir.DeclareFunction{Name: name.Literal, Params: params, Body: body},
	}, nil
}

// parseParams reads a parameter list with the opening parenthesis already
// consumed, through the closing parenthesis. A trailing comma is accepted.
func (p *Parser) parseParams() ([]string, error) {
	params := []string{}
	for {
		tok, ok := p.cur.peek()
		if !ok || tok.Kind == token.EOF {
			return nil, p.eofError("parameter list", `")"`)
		}
		if tok.Equal(token.RParen) {
			p.cur.consume()
			return params, nil
		}
		if tok.Kind != token.IDENT {
			return nil, p.syntaxError(tok, errors.E1006,
				"unexpected %s in parameter list (expected parameter name)", tok.Describe())
		}
		p.cur.consume()
		params = append(params, tok.Literal)

		sep, ok := p.cur.peek()
		if !ok || sep.Kind == token.EOF {
			return nil, p.eofError("parameter list", `")"`)
		}
		switch {
		case sep.Equal(token.Comma):
			p.cur.consume()
		case sep.Equal(token.RParen):
			p.cur.consume()
			return params, nil
		default:
			return nil, p.syntaxError(sep, errors.E1003,
				`unexpected %s in parameter list (expected "," or ")")`, sep.Describe())
		}
	}
}

// parseCall handles a statement-position call `name(args);`. Each argument
// is an expression handed to the translator in order, followed by the call.
func (p *Parser) parseCall() ([]ir.Instruction, error) {
	name, _ := p.cur.consume()
	p.cur.consume() // (
	context := "call to " + name.Literal
	instrs := []ir.Instruction{}
	argc := 0
	if next, ok := p.cur.peek(); ok && next.Equal(token.RParen) {
		p.cur.consume()
	} else {
		for {
			argTokens, err := p.extractUntil(context, token.Comma, token.RParen)
			if err != nil {
				return nil, err
			}
			if len(argTokens) == 0 {
				next, _ := p.cur.peek()
				return nil, p.syntaxError(next, errors.E1004, "missing argument in %s", context)
			}
			arg, err := p.translate(context, argTokens)
			if err != nil {
				return nil, err
			}
			instrs = append(instrs, arg...)
			argc++
			sep, _ := p.cur.consume()
			if sep.Equal(token.RParen) {
				break
			}
		}
	}
	if _, err := p.expect(token.Semicolon, context); err != nil {
		return nil, err
	}
	return append(instrs, ir.Call{Name: name.Literal, ArgCount: argc}), nil
}

// parseExpressionStatement handles `expr;`. The value left on the stack is
// discarded by the evaluator.
func (p *Parser) parseExpressionStatement() ([]ir.Instruction, error) {
	first, _ := p.cur.peek()
	second, _ := p.cur.peekN(1)
	exprTokens, err := p.extractUntil("expression statement", token.Semicolon)
	if err != nil {
		return nil, withKeywordHint(err, first, second)
	}
	instrs, err := p.translate("expression statement", exprTokens)
	if err != nil {
		return nil, withKeywordHint(err, first, second)
	}
	if _, err := p.expect(token.Semicolon, "expression statement"); err != nil {
		return nil, err
	}
	return instrs, nil
}

// withKeywordHint adds a hint to err when a statement opens with two
// identifiers and the first is close to a keyword, as in `lett x = 1;`.
func withKeywordHint(err error, first, second token.Token) error {
	if first.Kind != token.IDENT || second.Kind != token.IDENT {
		return err
	}
	hint := errors.DidYouMean(errors.Suggest(first.Literal, token.Keywords()))
	if hint == "" {
		return err
	}
	if b, ok := err.(interface{ base() *BaseParserError }); ok && b.base().hint == "" {
		b.base().hint = hint
	}
	return err
}
