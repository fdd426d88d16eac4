// Package document owns the canvas element model: the span-backed text
// element with its placement, per-line alignment overrides and JSON
// persistence, plus the editor shell that wires surface events through
// reconciliation, style application and selection projection.
package document

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-collage/collage/pkg/span"
)

// Alignment is a horizontal text alignment. The zero value means "unset":
// a per-line slot left at AlignUnset inherits the element's block default.
type Alignment int

const (
	AlignUnset Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return ""
	}
}

// MarshalText encodes the alignment as its CSS keyword; AlignUnset encodes
// as the empty string so sparse override arrays serialize naturally.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes a CSS alignment keyword.
func (a *Alignment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*a = AlignUnset
	case "left":
		*a = AlignLeft
	case "center":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	case "justify":
		*a = AlignJustify
	default:
		return fmt.Errorf("unknown alignment %q", text)
	}
	return nil
}

// ApplyAlignmentEdit keeps the sparse per-line alignment overrides in
// lockstep with a text edit. oldText is the full text before the edit.
// Splitting a line duplicates its effective alignment into the new slot;
// deleting newlines removes the slots of the absorbed lines. The result is
// always canonicalized.
func ApplyAlignmentEdit(aligns []Alignment, def Alignment, oldText string, edit span.Edit) []Alignment {
	removed := strings.Count(edit.OldText, "\n")
	inserted := strings.Count(edit.NewText, "\n")
	if removed == 0 && inserted == 0 {
		return CanonicalAlignments(aligns, def)
	}

	line := strings.Count(oldText[:min(edit.Start, len(oldText))], "\n")
	out := slices.Clone(aligns)

	if removed > 0 && line+1 < len(out) {
		end := min(line+1+removed, len(out))
		out = append(out[:line+1], out[end:]...)
	}
	if inserted > 0 && line < len(out) {
		eff := out[line]
		if eff == AlignUnset {
			eff = def
		}
		dup := make([]Alignment, inserted)
		for i := range dup {
			dup[i] = eff
		}
		out = slices.Insert(out, line+1, dup...)
	}
	return CanonicalAlignments(out, def)
}

// CanonicalAlignments returns the canonical representation of a sparse
// override array: trailing unset slots are trimmed, and if every defined
// entry equals the block default the whole array collapses to nil so "no
// overrides" has exactly one form.
func CanonicalAlignments(aligns []Alignment, def Alignment) []Alignment {
	n := len(aligns)
	for n > 0 && aligns[n-1] == AlignUnset {
		n--
	}
	aligns = aligns[:n]
	for _, a := range aligns {
		if a != AlignUnset && a != def {
			return aligns
		}
	}
	return nil
}

// EffectiveAlignment returns the alignment in force for the given line:
// the override when one is defined, else the block default.
func EffectiveAlignment(aligns []Alignment, def Alignment, line int) Alignment {
	if line >= 0 && line < len(aligns) && aligns[line] != AlignUnset {
		return aligns[line]
	}
	return def
}
