package token

import (
	"sx/internal/source"
)

// Token represents a single source token with its location.
// Text is owned by the token: the lexer copies it out of the source
// buffer, and the parser copies it again into literal nodes.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsBracket reports whether the token is an opening or closing bracket.
func (t Token) IsBracket() bool {
	switch t.Kind {
	case LParen, RParen:
		return true
	default:
		return false
	}
}

// IsAtom reports whether the token is a literal atom.
func (t Token) IsAtom() bool { return t.Kind == Atom }
