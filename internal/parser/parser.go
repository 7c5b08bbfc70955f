// Package parser builds the expression tree out of the token sequence.
//
// Construction is a recursive descent over a shared cursor and a nesting
// depth counter. Every opening bracket consumed must be matched by a
// closing bracket at the same depth; top-level tokens with no enclosing
// brackets are implicitly grouped. A single-token input is returned as a
// bare literal without the implicit group, and a fully bracketed input is
// returned as its own group rather than rewrapped, so group nesting in
// the tree always matches bracket nesting in the source.
package parser

import (
	"fmt"

	"sx/internal/ast"
	"sx/internal/diag"
	"sx/internal/source"
	"sx/internal/token"
)

// Build constructs the expression tree for the token sequence lexed from
// file. The returned error, if any, is a *Error carrying the diag.Code of
// the first failure.
func Build(file *source.File, tokens []token.Token, opts Options) (*ast.Node, error) {
	b := &builder{file: file, tokens: tokens, opts: opts}

	if len(tokens) == 0 {
		return nil, b.fail(diag.ParseNoTokens, b.endSpan(), "expression contains no tokens")
	}

	// A whole input of exactly one token skips the implicit group: an atom
	// becomes a bare literal, a lone bracket can never be completed.
	if len(tokens) == 1 {
		tok := tokens[0]
		switch tok.Kind {
		case token.Atom:
			return ast.NewLiteral(tok.Text, tok.Span), nil
		case token.LParen, token.RParen:
			return nil, b.fail(diag.ParseSingleBracket, tok.Span,
				"expression is a single %q", tok.Text)
		case token.EOF:
			return nil, b.fail(diag.ParseNoTokens, tok.Span, "expression contains no tokens")
		}
	}

	return b.build(0, source.Span{})
}

type builder struct {
	file   *source.File
	tokens []token.Token
	cursor int
	opts   Options
}

// build consumes tokens until the group at the given depth closes.
// open is the span of the bracket that opened this group; it is the zero
// span for the implicit top-level group.
func (b *builder) build(depth int, open source.Span) (*ast.Node, error) {
	var children []*ast.Node

	for b.cursor < len(b.tokens) {
		tok := b.tokens[b.cursor]
		b.cursor++

		switch tok.Kind {
		case token.Atom:
			children = append(children, ast.NewLiteral(tok.Text, tok.Span))

		case token.LParen:
			child, err := b.build(depth+1, tok.Span)
			if err != nil {
				return nil, err
			}
			children = append(children, child)

		case token.RParen:
			if depth == 0 {
				return nil, b.fail(diag.ParseUnexpectedRBracket, tok.Span,
					"unexpected %q: no open group to close", tok.Text)
			}
			return ast.NewGroup(children, open.Cover(tok.Span)), nil

		case token.EOF:
			// EOF never appears in a materialized token slice; treat it
			// as the end of the stream if a caller hands one in anyway.
			b.cursor = len(b.tokens)
		}
	}

	if depth > 0 {
		err := &Error{
			Code: diag.ParseUnexpectedEOF,
			Span: b.endSpan(),
			Msg:  "expression ends inside an open group",
		}
		diag.ReportError(b.opts.Reporter, err.Code, err.Span, err.Msg).
			WithNote(open, "group opened here").
			Emit()
		return nil, err
	}

	// A fully bracketed input already produced its own group; wrapping it
	// again would add a nesting level the source never had.
	if len(children) == 1 {
		return children[0], nil
	}

	// Implicit top-level group.
	return ast.NewGroup(children, b.span()), nil
}

// fail reports the failure to the configured Reporter and returns it as an
// error.
func (b *builder) fail(code diag.Code, span source.Span, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	diag.ReportError(b.opts.Reporter, code, span, msg).Emit()
	return &Error{Code: code, Span: span, Msg: msg}
}

// span covers the entire token sequence.
func (b *builder) span() source.Span {
	if len(b.tokens) == 0 {
		return b.endSpan()
	}
	return b.tokens[0].Span.Cover(b.tokens[len(b.tokens)-1].Span)
}

// endSpan is the empty span just past the last byte of the file.
func (b *builder) endSpan() source.Span {
	end := uint32(len(b.file.Content))
	return source.Span{File: b.file.ID, Start: end, End: end}
}
