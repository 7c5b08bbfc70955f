// Package lexer turns raw source bytes into a stream of tokens.
//
// The scanner accumulates a pending atom while walking the input byte by
// byte. Space and brackets flush the pending atom; space is then dropped
// and brackets become their own tokens. Newline is dropped without
// flushing, so an atom split across a bare newline merges into one token
// unless Options.NewlineDelimits is set. Every other byte, tabs included,
// extends the pending atom.
package lexer

import (
	"sx/internal/source"
	"sx/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	pending []byte // atom bytes accumulated so far
	start   Mark   // position of the first pending byte
	look    *token.Token
}

// New creates a lexer over the given file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After the input is exhausted it
// always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.cursor.EOF() {
			if tok, ok := lx.flushPending(); ok {
				return tok
			}
			return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		}

		switch b := lx.cursor.Peek(); {
		case b == ' ':
			if tok, ok := lx.flushPending(); ok {
				lx.cursor.Bump()
				return tok
			}
			lx.cursor.Bump()

		case b == '\n':
			if lx.opts.NewlineDelimits {
				if tok, ok := lx.flushPending(); ok {
					lx.cursor.Bump()
					return tok
				}
			}
			// Dropped without flushing: the pending atom survives the
			// line break and keeps accumulating.
			lx.cursor.Bump()

		case b == '(' || b == ')':
			if tok, ok := lx.flushPending(); ok {
				// The bracket stays for the next call.
				return tok
			}
			return lx.scanBracket(b)

		default:
			if len(lx.pending) == 0 {
				lx.start = lx.cursor.Mark()
			}
			lx.pending = append(lx.pending, lx.cursor.Bump())
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer and returns every significant token, EOF excluded.
func (lx *Lexer) Tokens() []token.Token {
	toks := make([]token.Token, 0, 16)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func (lx *Lexer) scanBracket(b byte) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	kind := token.LParen
	if b == ')' {
		kind = token.RParen
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(m),
		Text: string(b),
	}
}

// flushPending emits the accumulated atom, if any. The span covers every
// consumed byte since the atom started, newlines swallowed mid-atom
// included; the text does not contain them.
func (lx *Lexer) flushPending() (token.Token, bool) {
	if len(lx.pending) == 0 {
		return token.Token{}, false
	}
	tok := token.Token{
		Kind: token.Atom,
		Span: lx.cursor.SpanFrom(lx.start),
		Text: string(lx.pending),
	}
	lx.pending = lx.pending[:0]
	return tok, true
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
