package parser

import (
	"sx/internal/diag"
)

// Options configures tree construction.
type Options struct {
	// Reporter receives the failure as a diagnostic in addition to the
	// returned error. May be nil.
	Reporter diag.Reporter
}
