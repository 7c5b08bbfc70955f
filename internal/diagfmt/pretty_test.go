package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"sx/internal/diagfmt"
	"sx/internal/driver"
)

func TestPretty_ParseError(t *testing.T) {
	result, err := driver.ParseString("test.sx", "(+ 1 2", driver.Options{})
	if err == nil {
		t.Fatal("Expected parse failure")
	}

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, result.Bag, result.FileSet, diagfmt.PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "test.sx:1:7: ERROR [SYN2004]:") {
		t.Errorf("Missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "(+ 1 2") {
		t.Errorf("Missing source context, got:\n%s", out)
	}
	if !strings.Contains(out, "note:") {
		t.Errorf("Missing open-bracket note, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Missing caret underline, got:\n%s", out)
	}
}

func TestPretty_UnderlineWidth(t *testing.T) {
	result, err := driver.EvalString("test.sx", "(+ 1 oops)", driver.Options{})
	if err == nil {
		t.Fatal("Expected eval failure")
	}

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, result.Bag, result.FileSet, diagfmt.PrettyOpts{})
	out := buf.String()

	// "oops" is 4 bytes wide: caret plus three tildes.
	if !strings.Contains(out, "^~~~") {
		t.Errorf("Expected 4-wide underline, got:\n%s", out)
	}
	if !strings.Contains(out, "ERROR [EVL3005]:") {
		t.Errorf("Missing eval header, got:\n%s", out)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	result := driver.TokenizeString("test.sx", "(+ 12)", driver.Options{})

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&buf, result.Tokens, result.FileSet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 token lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "LParen") {
		t.Errorf("Expected LParen on first line, got %q", lines[0])
	}
	if !strings.Contains(lines[2], `"12"`) {
		t.Errorf("Expected quoted atom text, got %q", lines[2])
	}
	if !strings.Contains(lines[2], "at 1:4-1:6") {
		t.Errorf("Expected position 1:4-1:6, got %q", lines[2])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	result := driver.TokenizeString("test.sx", "(1)", driver.Options{})

	var buf bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&buf, result.Tokens); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"LParen"`, `"Atom"`, `"RParen"`, `"text": "1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %s in JSON output, got:\n%s", want, out)
		}
	}
}
