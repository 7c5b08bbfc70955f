// Package driver wires the lexer, parser, and evaluator into one pipeline
// and owns the per-run plumbing (FileSet, diagnostic Bag). The core
// stages never see files or the CLI; the driver is the only layer that
// loads input and hands strings down.
package driver

import (
	"sx/internal/ast"
	"sx/internal/diag"
	"sx/internal/eval"
	"sx/internal/lexer"
	"sx/internal/parser"
	"sx/internal/source"
	"sx/internal/token"
)

// TokenizeResult carries the token stream plus the plumbing needed to
// render it.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// ParseResult carries the finished tree plus the plumbing needed to
// render diagnostics. Tree is nil when parsing failed; the failure is in
// the Bag and in the returned error.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Tree    *ast.Node
	Bag     *diag.Bag
}

// EvalResult is a ParseResult plus the computed value.
type EvalResult struct {
	ParseResult
	Value float64
}

// Tokenize loads a file from disk and lexes it. Lexing never fails, so
// the only error is IO.
func Tokenize(filePath string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return tokenize(fs, fileID, opts), nil
}

// TokenizeString lexes in-memory input under a virtual file name.
func TokenizeString(name, input string, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(input))
	return tokenize(fs, fileID, opts)
}

func tokenize(fs *source.FileSet, fileID source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{NewlineDelimits: opts.NewlineDelimits})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.Tokens(),
		Bag:     diag.NewBag(opts.maxDiagnostics()),
	}
}

// Parse loads a file from disk, lexes it, and builds the tree. An IO
// failure is returned with a nil result; a construction failure is
// returned alongside a result whose Bag holds the diagnostic.
func Parse(filePath string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parse(fs, fileID, opts)
}

// ParseString parses in-memory input under a virtual file name.
func ParseString(name, input string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(input))
	return parse(fs, fileID, opts)
}

func parse(fs *source.FileSet, fileID source.FileID, opts Options) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())

	lx := lexer.New(file, lexer.Options{NewlineDelimits: opts.NewlineDelimits})
	tokens := lx.Tokens()

	result := &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}

	tree, err := parser.Build(file, tokens, parser.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if err != nil {
		return result, err
	}
	result.Tree = tree
	return result, nil
}

// Eval runs the full pipeline over a file on disk.
func Eval(filePath string, opts Options) (*EvalResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return evaluate(fs, fileID, opts)
}

// EvalString runs the full pipeline over in-memory input.
func EvalString(name, input string, opts Options) (*EvalResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(input))
	return evaluate(fs, fileID, opts)
}

func evaluate(fs *source.FileSet, fileID source.FileID, opts Options) (*EvalResult, error) {
	parsed, err := parse(fs, fileID, opts)
	result := &EvalResult{ParseResult: *parsed}
	if err != nil {
		return result, err
	}

	value, err := eval.Evaluate(parsed.Tree, eval.Options{
		Reporter: diag.BagReporter{Bag: parsed.Bag},
	})
	if err != nil {
		return result, err
	}
	result.Value = value
	return result, nil
}
