// Package span implements the styled-run text model: a flat sequence of
// (text, style) runs whose concatenation is the element's full logical text.
// The sequence is the sole source of truth for styled text; the editable
// surface rendering it is disposable and is reconciled back into spans after
// every observed mutation (see Reconcile).
//
// All offsets in this package are byte offsets into the concatenated text,
// matching how the surface package measures its content.
package span

import (
	"strings"

	"github.com/go-collage/collage/pkg/style"
)

// Span is a run of characters sharing one style.
type Span struct {
	Text  string          `json:"text"`
	Style style.TextStyle `json:"style"`
}

// Text returns the concatenation of all span texts.
func Text(spans []Span) string {
	if len(spans) == 1 {
		return spans[0].Text
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Normalize restores the sequence invariants: adjacent spans with equal
// styles are merged, zero-length spans are dropped, and an empty result is
// replaced by a single empty span carrying the fallback style so the
// sequence always has at least one span to hold the typing style.
func Normalize(spans []Span, fallback style.TextStyle) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return []Span{{Text: "", Style: fallback}}
	}
	return out
}

// StyleAt returns the style governing the character at the given offset.
// When the offset lands exactly on a span boundary the following span wins;
// an offset at or beyond the end of the text falls back to the last span,
// whose style is what the next typed character would receive.
func StyleAt(spans []Span, offset int) style.TextStyle {
	pos := 0
	for _, s := range spans {
		end := pos + len(s.Text)
		if offset < end {
			return s.Style
		}
		pos = end
	}
	if len(spans) > 0 {
		return spans[len(spans)-1].Style
	}
	return style.Default()
}

// slice returns the sub-sequence of spans covering [from, to), clipping the
// spans that straddle either bound. Bounds outside the text yield whatever
// overlap exists; a degenerate range yields nil.
func slice(spans []Span, from, to int) []Span {
	var out []Span
	pos := 0
	for _, s := range spans {
		end := pos + len(s.Text)
		a, b := max(pos, from), min(end, to)
		if a < b {
			out = append(out, Span{Text: s.Text[a-pos : b-pos], Style: s.Style})
		}
		pos = end
		if pos >= to {
			break
		}
	}
	return out
}
