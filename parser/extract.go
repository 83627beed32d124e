package parser

import "github.com/risor-io/stackscript/token"

// extractUntil consumes raw tokens up to, but not including, the first token
// equal to one of the terminators. Parentheses are tracked so that a
// terminator only matches outside any grouping. The terminator is left for
// the caller.
func (p *Parser) extractUntil(context string, terminators ...token.Token) ([]token.Token, error) {
	var tokens []token.Token
	depth := 0
	for {
		tok, ok := p.cur.peek()
		if !ok {
			return nil, p.eofError(context, describeAll(terminators))
		}
		if depth == 0 && matchesAny(tok, terminators) {
			return tokens, nil
		}
		if tok.Kind == token.EOF {
			return nil, p.eofError(context, describeAll(terminators))
		}
		switch {
		case tok.Equal(token.LParen):
			depth++
		case tok.Equal(token.RParen) && depth > 0:
			depth--
		}
		p.cur.consume()
		tokens = append(tokens, tok)
	}
}

func matchesAny(tok token.Token, set []token.Token) bool {
	for _, t := range set {
		if tok.Equal(t) {
			return true
		}
	}
	return false
}

func describeAll(set []token.Token) string {
	switch len(set) {
	case 0:
		return "terminator"
	case 1:
		return set[0].Describe()
	}
	s := set[0].Describe()
	for _, t := range set[1 : len(set)-1] {
		s += ", " + t.Describe()
	}
	return s + " or " + set[len(set)-1].Describe()
}
