package parser

import (
	"fmt"

	"sx/internal/diag"
	"sx/internal/source"
)

// Error is a single construction failure. The first error encountered
// aborts the build; there is no recovery and no partial tree.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}
