package lexer

// Options configures lexer behavior. Lexing itself never fails: any byte
// sequence produces a token sequence, so there is no error reporting here.
type Options struct {
	// NewlineDelimits makes '\n' terminate an in-progress atom the same
	// way ' ' does. By default newline is dropped without flushing, which
	// silently merges an atom that straddles a bare newline. That matches
	// the historical behavior; see the package doc for the trade-off.
	NewlineDelimits bool
}
