package span

// Edit describes the changed region of a reconciled mutation: the bytes
// OldText at offset Start were replaced by NewText. The line-alignment
// tracker consumes this to keep per-line overrides in lockstep.
type Edit struct {
	Start   int
	OldText string
	NewText string
}

// IsNoop returns true if the edit changed nothing.
func (e Edit) IsNoop() bool {
	return e.OldText == "" && e.NewText == ""
}

// Reconcile converts an externally mutated flat string back into a span
// sequence that preserves per-character styling. oldText must be the
// concatenation of oldSpans; newText is whatever the editable surface now
// contains. The changed region is found by common prefix/suffix comparison
// and the inserted text inherits the style of the old span containing the
// prefix boundary. When nothing changed the input spans are returned as is.
//
// The boundary span's style is always used for the middle region, even when
// a multi-point edit happens to share coincidental prefix/suffix characters
// with its surroundings. That matches the shipped editor behavior; do not
// replace it with a smarter vote over the replaced region.
func Reconcile(oldSpans []Span, oldText, newText string) ([]Span, Edit) {
	if oldText == newText {
		return oldSpans, Edit{Start: len(oldText)}
	}

	p := commonPrefix(oldText, newText)
	s := commonSuffix(oldText, newText, p)

	oldMid := oldText[p : len(oldText)-s]
	newMid := newText[p : len(newText)-s]
	midStyle := StyleAt(oldSpans, p)

	out := slice(oldSpans, 0, p)
	if newMid != "" {
		out = append(out, Span{Text: newMid, Style: midStyle})
	}
	out = append(out, slice(oldSpans, len(oldText)-s, len(oldText))...)

	return Normalize(out, midStyle), Edit{Start: p, OldText: oldMid, NewText: newMid}
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// commonSuffix returns the length of the longest common suffix of a and b
// that does not overlap the common prefix, so a fully replaced middle never
// double-counts shared characters.
func commonSuffix(a, b string, prefix int) int {
	n := min(len(a), len(b)) - prefix
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	return i
}
