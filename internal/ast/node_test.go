package ast

import (
	"testing"

	"sx/internal/source"
)

func lit(text string, start, end uint32) *Node {
	return NewLiteral(text, source.Span{Start: start, End: end})
}

func TestNewGroup_SpanCoversChildren(t *testing.T) {
	group := NewGroup([]*Node{
		lit("+", 1, 2),
		lit("12", 3, 5),
		lit("3", 6, 7),
	}, source.Span{Start: 0, End: 1})

	if group.Span.Start != 0 || group.Span.End != 7 {
		t.Errorf("Expected span 0-7, got %d-%d", group.Span.Start, group.Span.End)
	}
}

func TestDepth(t *testing.T) {
	leaf := lit("1", 0, 1)
	flat := NewGroup([]*Node{lit("+", 0, 1), lit("1", 2, 3), lit("2", 4, 5)}, source.Span{})
	nested := NewGroup([]*Node{lit("*", 0, 1), flat}, source.Span{})

	tests := []struct {
		name string
		node *Node
		want int
	}{
		{"nil", nil, 0},
		{"literal", leaf, 0},
		{"flat group", flat, 1},
		{"nested group", nested, 2},
		{"empty group", NewGroup(nil, source.Span{}), 1},
	}
	for _, tt := range tests {
		if got := tt.node.Depth(); got != tt.want {
			t.Errorf("%s: expected depth %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestCount(t *testing.T) {
	flat := NewGroup([]*Node{lit("+", 0, 1), lit("1", 2, 3), lit("2", 4, 5)}, source.Span{})
	nested := NewGroup([]*Node{lit("*", 0, 1), flat}, source.Span{})

	if got := flat.Count(); got != 4 {
		t.Errorf("Flat group: expected 4 nodes, got %d", got)
	}
	if got := nested.Count(); got != 6 {
		t.Errorf("Nested group: expected 6 nodes, got %d", got)
	}
	if got := (*Node)(nil).Count(); got != 0 {
		t.Errorf("Nil: expected 0, got %d", got)
	}
}

func TestNodeKind_String(t *testing.T) {
	if NodeLiteral.String() != "Literal" || NodeGroup.String() != "Group" {
		t.Error("Unexpected kind names")
	}
	if NodeKind(99).String() != "Unknown" {
		t.Error("Out-of-range kind must stringify as Unknown")
	}
}
