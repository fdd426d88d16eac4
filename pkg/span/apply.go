package span

import "github.com/go-collage/collage/pkg/style"

// ApplyStyle applies a partial style patch to the selected character range.
// The merge precedence is fixed as def < existing span style < patch, so a
// patch carrying only one property never disturbs the others.
//
// An invalid selection is the whole-element context and leaves the spans
// untouched; style commands without a text selection are the caller's
// concern. A collapsed selection updates only the style of the span whose
// inclusive interval contains the caret (first match scanning left to
// right), which sets the typing style for the next input. A ranged
// selection splits every overlapping span into up to three parts and
// restyles the overlap. Out-of-bounds offsets produce empty overlaps and
// fall away naturally.
func ApplyStyle(spans []Span, sel Selection, patch, def style.TextStyle) []Span {
	if !sel.IsValid() || len(spans) == 0 {
		return spans
	}

	if sel.IsCollapsed() {
		return applyAtCaret(spans, sel.Start, patch, def)
	}

	out := make([]Span, 0, len(spans)+2)
	pos := 0
	for _, s := range spans {
		end := pos + len(s.Text)
		a, b := max(pos, sel.Start), min(end, sel.End)
		if a >= b {
			out = append(out, s)
		} else {
			if a > pos {
				out = append(out, Span{Text: s.Text[:a-pos], Style: s.Style})
			}
			out = append(out, Span{
				Text:  s.Text[a-pos : b-pos],
				Style: style.Merge(def, s.Style, patch),
			})
			if b < end {
				out = append(out, Span{Text: s.Text[b-pos:], Style: s.Style})
			}
		}
		pos = end
	}
	return Normalize(out, out[0].Style)
}

// applyAtCaret replaces the style of the span containing the caret offset.
// The span interval is treated as inclusive on both ends, so a caret sitting
// between two spans updates the earlier one.
func applyAtCaret(spans []Span, offset int, patch, def style.TextStyle) []Span {
	pos := 0
	for i, s := range spans {
		end := pos + len(s.Text)
		if offset >= pos && offset <= end {
			out := make([]Span, len(spans))
			copy(out, spans)
			out[i].Style = style.Merge(def, s.Style, patch)
			return Normalize(out, out[i].Style)
		}
		pos = end
	}
	return spans
}
