package driver

// DefaultMaxDiagnostics bounds the Bag when the caller does not say.
const DefaultMaxDiagnostics = 100

// Options configures a pipeline run.
type Options struct {
	// MaxDiagnostics caps the diagnostic Bag; 0 means DefaultMaxDiagnostics.
	MaxDiagnostics int
	// NewlineDelimits is passed through to the lexer.
	NewlineDelimits bool
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}
