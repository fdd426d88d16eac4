// Package surface models the live editable surface at the boundary of the
// text core. The surface owns a tree of line-segment containers holding text
// nodes; it is free to mutate that tree out of band, so nothing here is
// authoritative for persisted state. The package provides the bidirectional
// mapping between logical byte offsets in the element's full text and
// positions in the surface tree, plus the editing controller that carries
// the captured text and selection through the reconciliation flow.
package surface

import "strings"

// Placeholder is the zero-width space the surface inserts so empty line
// segments stay selectable. It is excluded from every measurement.
const Placeholder = '\u200b'

// placeholderBytes is the UTF-8 length of Placeholder.
const placeholderBytes = len(string(Placeholder))

// NodeKind discriminates surface tree nodes.
type NodeKind int

const (
	// ElementNode is a container; its children are ordered.
	ElementNode NodeKind = iota
	// TextNode carries a run of characters.
	TextNode
)

// Node is a node in the surface tree. The root's children are the
// line-segment containers, one per logical line.
type Node struct {
	Kind     NodeKind
	Text     string  // TextNode only
	Children []*Node // ElementNode only
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// NewSegment creates a line-segment container with the given children.
func NewSegment(children ...*Node) *Node {
	return &Node{Kind: ElementNode, Children: children}
}

// NewRoot creates a surface root whose children are line-segment containers.
func NewRoot(segments ...*Node) *Node {
	return &Node{Kind: ElementNode, Children: segments}
}

// Position identifies a location in the surface tree. For a text node,
// Offset is a byte offset into its text. For an element node, the position
// sits immediately before the child at index Offset.
type Position struct {
	Node   *Node
	Offset int
}

// visibleLen returns the measured text length of the subtree rooted at n,
// excluding placeholder characters.
func visibleLen(n *Node) int {
	if n == nil {
		return 0
	}
	if n.Kind == TextNode {
		return visibleTextLen(n.Text)
	}
	total := 0
	for _, c := range n.Children {
		total += visibleLen(c)
	}
	return total
}

// visibleTextLen returns len(s) minus the bytes taken by placeholders.
func visibleTextLen(s string) int {
	return len(s) - strings.Count(s, string(Placeholder))*placeholderBytes
}

// contains reports whether target is n or a descendant of n.
func contains(n, target *Node) bool {
	if n == nil || target == nil {
		return false
	}
	if n == target {
		return true
	}
	for _, c := range n.Children {
		if contains(c, target) {
			return true
		}
	}
	return false
}

// Text returns the full logical text of the surface: the visible text of
// each line-segment container, joined by newline separators. This, together
// with the previously stored spans, is the input to reconciliation.
func Text(root *Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	for i, seg := range root.Children {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeVisible(&b, seg)
	}
	return b.String()
}

func writeVisible(b *strings.Builder, n *Node) {
	if n.Kind == TextNode {
		b.WriteString(strings.ReplaceAll(n.Text, string(Placeholder), ""))
		return
	}
	for _, c := range n.Children {
		writeVisible(b, c)
	}
}

// TotalLength returns the length of the surface's full logical text.
func TotalLength(root *Node) int {
	if root == nil {
		return 0
	}
	total := 0
	for i, seg := range root.Children {
		if i > 0 {
			total++ // newline separator per container boundary
		}
		total += visibleLen(seg)
	}
	return total
}
