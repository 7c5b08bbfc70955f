package eval

import (
	"fmt"

	"sx/internal/diag"
	"sx/internal/source"
)

// Error is a single evaluation failure. Evaluation is fail-fast: the
// first error anywhere in the walk propagates to the caller untouched.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Msg)
}
