// Package token defines lexical token kinds for the sx expression language.
// Invariants:
//   - Token.Text is a copy of the matched source bytes, never a view into
//     the source buffer.
//   - Token.Span matches the consumed bytes exactly (Start..End).
//   - Whitespace never appears in the token stream; space terminates an
//     in-progress atom, newline does not (see the lexer for the details).
//   - Operator names (+, *) are ordinary atoms. They are recognized by the
//     evaluator, not the lexer.
package token
