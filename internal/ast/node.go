// Package ast defines the expression tree produced by the parser.
//
// A tree is acyclic and every node is exclusively owned by its parent:
// literal text is copied out of the token it came from, and child slices
// are never shared. Nodes are built bottom-up and never mutated after
// construction.
package ast

import (
	"sx/internal/source"
)

// NodeKind discriminates the node variants.
type NodeKind uint8

const (
	// NodeLiteral is an atom: an operator name or a numeral.
	NodeLiteral NodeKind = iota
	// NodeGroup is an ordered list of children, either a bracketed group
	// or the implicit top-level group.
	NodeGroup
)

func (k NodeKind) String() string {
	switch k {
	case NodeLiteral:
		return "Literal"
	case NodeGroup:
		return "Group"
	}
	return "Unknown"
}

// Node is one vertex of the expression tree. Text is meaningful only for
// NodeLiteral, Children only for NodeGroup.
type Node struct {
	Kind     NodeKind
	Text     string
	Children []*Node
	Span     source.Span
}

// NewLiteral builds a literal node owning a copy of the token text.
func NewLiteral(text string, span source.Span) *Node {
	return &Node{Kind: NodeLiteral, Text: text, Span: span}
}

// NewGroup builds a group node over the given children. The span is the
// cover of the provided span and every child span.
func NewGroup(children []*Node, span source.Span) *Node {
	for _, child := range children {
		span = span.Cover(child.Span)
	}
	return &Node{Kind: NodeGroup, Children: children, Span: span}
}

// Depth returns the maximum nesting depth of group nodes: 0 for a bare
// literal, 1 for a flat group, and so on.
func (n *Node) Depth() int {
	if n == nil || n.Kind != NodeGroup {
		return 0
	}
	max := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Count returns the number of nodes in the tree, the receiver included.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, child := range n.Children {
		total += child.Count()
	}
	return total
}
