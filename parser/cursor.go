package parser

import "github.com/risor-io/stackscript/token"

// cursor reads an immutable token buffer front to back. It never backtracks;
// lookahead is limited to peeking.
type cursor struct {
	tokens []token.Token
	pos    int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

// peek returns the next unconsumed token. ok is false once the buffer is
// exhausted.
func (c *cursor) peek() (token.Token, bool) {
	return c.peekN(0)
}

// peekN returns the token n positions after the next one without advancing.
func (c *cursor) peekN(n int) (token.Token, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[i], true
}

// consume advances past the next token and returns it.
func (c *cursor) consume() (token.Token, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// last returns the most recently consumed token, or the zero Token.
func (c *cursor) last() token.Token {
	if c.pos == 0 || len(c.tokens) == 0 {
		return token.Token{}
	}
	return c.tokens[c.pos-1]
}

// offset is the index of the next unconsumed token.
func (c *cursor) offset() int {
	return c.pos
}
