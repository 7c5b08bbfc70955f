package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// LParen represents an opening bracket token.
	LParen // (
	// RParen represents a closing bracket token.
	RParen // )
	// Atom represents a maximal run of non-whitespace, non-bracket
	// characters; semantically either an operator name or a numeral.
	Atom
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Atom:
		return "Atom"
	}
	return "Unknown"
}
