package surface

import "unicode/utf8"

// ToOffset maps a position in the surface tree to a logical byte offset in
// the full text. Segment boundaries count as one newline character each. A
// position outside the root entirely maps to the end of the text, parking
// the cursor there instead of failing.
func ToOffset(root *Node, pos Position) int {
	if root == nil {
		return 0
	}
	if pos.Node == nil || !contains(root, pos.Node) {
		return TotalLength(root)
	}
	if pos.Node == root {
		k := pos.Offset
		if k < 0 {
			k = 0
		}
		if k > len(root.Children) {
			k = len(root.Children)
		}
		total := 0
		for i := 0; i < k; i++ {
			total += visibleLen(root.Children[i])
		}
		return total + k
	}
	start := 0
	for i, seg := range root.Children {
		if contains(seg, pos.Node) {
			within, _ := measureToPosition(seg, pos)
			return start + i + within
		}
		start += visibleLen(seg)
	}
	return TotalLength(root)
}

// measureToPosition returns the visible length from the start of n to pos,
// and whether pos was found inside n.
func measureToPosition(n *Node, pos Position) (int, bool) {
	if n == pos.Node {
		if n.Kind == TextNode {
			off := pos.Offset
			if off < 0 {
				off = 0
			}
			if off > len(n.Text) {
				off = len(n.Text)
			}
			return visibleTextLen(n.Text[:off]), true
		}
		total := 0
		for i, c := range n.Children {
			if i >= pos.Offset {
				break
			}
			total += visibleLen(c)
		}
		return total, true
	}
	if n.Kind == TextNode {
		return visibleTextLen(n.Text), false
	}
	total := 0
	for _, c := range n.Children {
		v, found := measureToPosition(c, pos)
		total += v
		if found {
			return total, true
		}
	}
	return total, false
}

// ToPosition maps a logical byte offset to a position in the surface tree:
// the text node and intra-node offset holding that character. Positions are
// rune-aligned: an offset landing inside a multi-byte rune snaps forward to
// that rune's end, so the ToOffset round trip is exact for every
// rune-boundary offset and never lands mid-rune. An offset past the end of
// the content yields the position at the very end (the last text node's end,
// or the last container itself when it holds no text).
func ToPosition(root *Node, offset int) Position {
	if root == nil {
		return Position{}
	}
	if offset < 0 {
		offset = 0
	}
	start := 0
	for _, seg := range root.Children {
		l := visibleLen(seg)
		if offset <= start+l {
			return positionWithin(seg, offset-start)
		}
		start += l + 1
	}
	return endPosition(root)
}

// positionWithin locates the text node and intra-node byte offset for a
// visible offset relative to the start of the container.
func positionWithin(container *Node, rel int) Position {
	pos, found := findTextPosition(container, rel)
	if found {
		return pos
	}
	// No text nodes under the container; the position is the container itself.
	return Position{Node: container, Offset: 0}
}

func findTextPosition(n *Node, rel int) (Position, bool) {
	if n.Kind == TextNode {
		if rel <= visibleTextLen(n.Text) {
			return Position{Node: n, Offset: rawOffset(n.Text, rel)}, true
		}
		return Position{}, false
	}
	acc := 0
	for _, c := range n.Children {
		if pos, found := findTextPosition(c, rel-acc); found {
			return pos, true
		}
		acc += visibleLen(c)
	}
	return Position{}, false
}

// rawOffset converts a visible byte count into a raw byte offset within the
// text, skipping over placeholder characters. A count falling inside a
// multi-byte rune yields the offset of the rune's end.
func rawOffset(s string, visible int) int {
	if visible <= 0 {
		return 0
	}
	count := 0
	for i, r := range s {
		if r == Placeholder {
			continue
		}
		count += utf8.RuneLen(r)
		if count >= visible {
			return i + utf8.RuneLen(r)
		}
	}
	return len(s)
}

// endPosition returns the position at the very end of the surface content.
func endPosition(root *Node) Position {
	if t := lastTextNode(root); t != nil {
		return Position{Node: t, Offset: len(t.Text)}
	}
	if n := len(root.Children); n > 0 {
		last := root.Children[n-1]
		return Position{Node: last, Offset: len(last.Children)}
	}
	return Position{Node: root, Offset: 0}
}

func lastTextNode(n *Node) *Node {
	if n.Kind == TextNode {
		return n
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if t := lastTextNode(n.Children[i]); t != nil {
			return t
		}
	}
	return nil
}
