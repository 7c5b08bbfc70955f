package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"sx/internal/ast"
	"sx/internal/source"
)

// bracketColors cycle by nesting depth so matching brackets share a color.
var bracketColors = []*color.Color{
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
}

// RenderTree returns the nested bracketed textual form of the tree, one
// node per line, children indented one unit deeper. It is a display
// convenience with no effect on parsing or evaluation.
func RenderTree(node *ast.Node, indent string) string {
	var b strings.Builder
	writeTree(&b, node, indent, 0, false)
	return b.String()
}

// FormatTreePretty writes the tree in the same shape as RenderTree,
// optionally coloring brackets by depth.
func FormatTreePretty(w io.Writer, node *ast.Node, opts TreeOpts) error {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	var b strings.Builder
	writeTree(&b, node, indent, 0, opts.Color)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTree(b *strings.Builder, node *ast.Node, indent string, depth int, colored bool) {
	prefix := strings.Repeat(indent, depth)
	switch node.Kind {
	case ast.NodeLiteral:
		fmt.Fprintf(b, "%s%s\n", prefix, node.Text)
	case ast.NodeGroup:
		fmt.Fprintf(b, "%s%s\n", prefix, bracket("(", depth, colored))
		for _, child := range node.Children {
			writeTree(b, child, indent, depth+1, colored)
		}
		fmt.Fprintf(b, "%s%s\n", prefix, bracket(")", depth, colored))
	}
}

func bracket(s string, depth int, colored bool) string {
	if !colored {
		return s
	}
	return bracketColors[depth%len(bracketColors)].Sprint(s)
}

// TreeOutput mirrors ast.Node for serialization. The same shape feeds the
// JSON and msgpack exports.
type TreeOutput struct {
	Kind     string       `json:"kind" msgpack:"kind"`
	Text     string       `json:"text,omitempty" msgpack:"text,omitempty"`
	Children []TreeOutput `json:"children,omitempty" msgpack:"children,omitempty"`
	Span     source.Span  `json:"span" msgpack:"span"`
}

func treeOutput(node *ast.Node) TreeOutput {
	out := TreeOutput{
		Kind: node.Kind.String(),
		Text: node.Text,
		Span: node.Span,
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, treeOutput(child))
	}
	return out
}

// FormatTreeJSON writes the tree as indented JSON.
func FormatTreeJSON(w io.Writer, node *ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(treeOutput(node))
}

// FormatTreeMsgpack writes the tree in msgpack, a compact binary form for
// downstream tooling.
func FormatTreeMsgpack(w io.Writer, node *ast.Node) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(treeOutput(node))
}
