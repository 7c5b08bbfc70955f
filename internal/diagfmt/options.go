package diagfmt

// PrettyOpts controls human-readable diagnostic output.
type PrettyOpts struct {
	// Color enables ANSI colors in the output.
	Color bool
}

// TreeOpts controls expression tree rendering.
type TreeOpts struct {
	// Indent is the per-level indentation unit; defaults to two spaces.
	Indent string
	// Color enables depth-cycled bracket colors.
	Color bool
}
