package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"sx/internal/diagfmt"
	"sx/internal/driver"
)

func parseTree(t *testing.T, input string) *driver.ParseResult {
	t.Helper()
	result, err := driver.ParseString("<test>", input, driver.Options{})
	if err != nil {
		t.Fatalf("Input %q: parse failed: %v", input, err)
	}
	return result
}

func TestRenderTree(t *testing.T) {
	result := parseTree(t, "(* 2 (+ 3 4))")

	want := strings.Join([]string{
		"(",
		"  *",
		"  2",
		"  (",
		"    +",
		"    3",
		"    4",
		"  )",
		")",
		"",
	}, "\n")
	if got := diagfmt.RenderTree(result.Tree, "  "); got != want {
		t.Errorf("RenderTree mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderTree_CustomIndent(t *testing.T) {
	result := parseTree(t, "(+ 1 2)")
	got := diagfmt.RenderTree(result.Tree, "\t")
	if !strings.Contains(got, "\t+\n") {
		t.Errorf("Expected tab indentation, got:\n%s", got)
	}
}

func TestRenderTree_BareLiteral(t *testing.T) {
	result := parseTree(t, "42")
	if got := diagfmt.RenderTree(result.Tree, "  "); got != "42\n" {
		t.Errorf("Expected \"42\\n\", got %q", got)
	}
}

func TestFormatTreePretty_MatchesRenderTree(t *testing.T) {
	result := parseTree(t, "(+ 1 (* 2 3))")

	var buf bytes.Buffer
	if err := diagfmt.FormatTreePretty(&buf, result.Tree, diagfmt.TreeOpts{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != diagfmt.RenderTree(result.Tree, "  ") {
		t.Error("Uncolored pretty output must equal RenderTree")
	}
}

func TestFormatTreeJSON(t *testing.T) {
	result := parseTree(t, "(+ 1 2)")

	var buf bytes.Buffer
	if err := diagfmt.FormatTreeJSON(&buf, result.Tree); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.TreeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if out.Kind != "Group" {
		t.Errorf("Expected root kind Group, got %q", out.Kind)
	}
	if len(out.Children) != 3 {
		t.Errorf("Expected 3 children, got %d", len(out.Children))
	}
	if out.Children[0].Text != "+" {
		t.Errorf("Expected operator child \"+\", got %q", out.Children[0].Text)
	}
}

func TestFormatTreeMsgpack(t *testing.T) {
	result := parseTree(t, "(* 2 (+ 3 4))")

	var buf bytes.Buffer
	if err := diagfmt.FormatTreeMsgpack(&buf, result.Tree); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.TreeOutput
	if err := msgpack.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Output is not valid msgpack: %v", err)
	}
	if out.Kind != "Group" || len(out.Children) != 3 {
		t.Errorf("Unexpected decoded shape: %q with %d children",
			out.Kind, len(out.Children))
	}
}
