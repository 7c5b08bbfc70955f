package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified findings.
	UnknownCode Code = 0

	// Parse errors (2000-2999)
	ParseNoTokens           Code = 2001
	ParseSingleBracket      Code = 2002
	ParseUnexpectedRBracket Code = 2003
	ParseUnexpectedEOF      Code = 2004

	// Eval errors (3000-3999)
	EvalEmptyGroup   Code = 3001
	EvalOpNotLiteral Code = 3002
	EvalBadArity     Code = 3003
	EvalUnknownOp    Code = 3004
	EvalBadNumeral   Code = 3005
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	ParseNoTokens:           "input contains no tokens",
	ParseSingleBracket:      "input is a single bracket",
	ParseUnexpectedRBracket: "closing bracket without an open group",
	ParseUnexpectedEOF:      "input ends inside an open group",

	EvalEmptyGroup:   "group has no children",
	EvalOpNotLiteral: "operator position holds a group",
	EvalBadArity:     "operator does not take this many operands",
	EvalUnknownOp:    "unknown operator",
	EvalBadNumeral:   "literal is not a valid number",
}

// ID returns the stable short identifier, e.g. "SYN2004" or "EVL3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

// Title returns the human readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
