package document

import (
	"fmt"

	"github.com/go-collage/collage/pkg/geometry"
	"github.com/go-collage/collage/pkg/span"
	"github.com/go-collage/collage/pkg/style"
)

// ElementKind discriminates canvas element types.
type ElementKind string

const (
	KindText   ElementKind = "text"
	KindImage  ElementKind = "image"
	KindCutout ElementKind = "cutout"
)

// VerticalAlignment positions a text block inside its frame.
type VerticalAlignment string

const (
	VAlignTop    VerticalAlignment = "top"
	VAlignMiddle VerticalAlignment = "middle"
	VAlignBottom VerticalAlignment = "bottom"
)

// Element is one object placed on the canvas. Placement fields apply to all
// kinds; the text fields are populated only for KindText elements. The span
// sequence is exclusively owned by its element: the editable surface
// rendering it is disposable and every surface mutation is reconciled back
// into the spans, never read as-is.
type Element struct {
	ID       string      `json:"id"`
	Kind     ElementKind `json:"kind"`
	X        float64     `json:"x"`
	Y        float64     `json:"y"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Rotation float64     `json:"rotation"` // radians
	ZIndex   int         `json:"zIndex"`

	Spans          []span.Span         `json:"spans,omitempty"`
	TextAlign      Alignment           `json:"textAlign,omitempty"`
	LineAlignments []Alignment         `json:"lineAlignments,omitempty"`
	VerticalAlign  VerticalAlignment   `json:"verticalAlign,omitempty"`
	LetterSpacing  float64             `json:"letterSpacing,omitempty"`
	Padding        geometry.EdgeInsets `json:"padding,omitzero"`
	ScaleX         float64             `json:"scaleX,omitempty"`
	ScaleY         float64             `json:"scaleY,omitempty"`

	// Src is the image source for KindImage elements, including a text
	// element that has been converted to an image.
	Src string `json:"src,omitempty"`
}

// NewTextElement creates a text element seeded with a single empty span
// carrying the given style, the state produced by an "add text" action.
func NewTextElement(id string, s style.TextStyle) *Element {
	return &Element{
		ID:        id,
		Kind:      KindText,
		Spans:     []span.Span{{Text: "", Style: s}},
		TextAlign: AlignLeft,
		ScaleX:    1,
		ScaleY:    1,
	}
}

// Bounds returns the element's authored frame on the canvas. Rotation is
// not applied; the frame is the unrotated placement rectangle.
func (e *Element) Bounds() geometry.Rect {
	return geometry.RectFromLTWH(e.X, e.Y, e.Width, e.Height)
}

// FullText returns the element's full logical text, the concatenation of
// its spans.
func (e *Element) FullText() string {
	return span.Text(e.Spans)
}

// Normalize restores the span-sequence and alignment invariants after
// direct manipulation, using the given style as the fallback for an
// all-empty sequence.
func (e *Element) Normalize(fallback style.TextStyle) {
	if e.Kind != KindText {
		return
	}
	e.Spans = span.Normalize(e.Spans, fallback)
	e.LineAlignments = CanonicalAlignments(e.LineAlignments, e.TextAlign)
}

// ConvertToImage turns the element into an image element, destroying the
// text model. The rendered raster is the caller's concern; src identifies it.
func (e *Element) ConvertToImage(src string) {
	e.Kind = KindImage
	e.Src = src
	e.Spans = nil
	e.LineAlignments = nil
	e.VerticalAlign = ""
	e.LetterSpacing = 0
}

// Validate checks the element's invariants. It exists for tooling and load
// paths; the editing hot path maintains the invariants by construction and
// never calls it.
func (e *Element) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("element without id")
	}
	if e.Kind != KindText {
		return nil
	}
	if len(e.Spans) == 0 {
		return fmt.Errorf("element %s: text element has no spans", e.ID)
	}
	for i, sp := range e.Spans {
		if err := validateStyle(sp.Style); err != nil {
			return fmt.Errorf("element %s: span %d: %w", e.ID, i, err)
		}
		if sp.Text == "" && len(e.Spans) > 1 {
			return fmt.Errorf("element %s: span %d is empty in a multi-span sequence", e.ID, i)
		}
		if i > 0 && e.Spans[i-1].Style == sp.Style {
			return fmt.Errorf("element %s: spans %d and %d have equal styles and must be merged", e.ID, i-1, i)
		}
	}
	if canon := CanonicalAlignments(e.LineAlignments, e.TextAlign); len(canon) != len(e.LineAlignments) {
		return fmt.Errorf("element %s: lineAlignments is not canonical", e.ID)
	}
	return nil
}

func validateStyle(s style.TextStyle) error {
	if s.FontSize <= 0 {
		return fmt.Errorf("font size %v out of range", s.FontSize)
	}
	if s.FontWeight < 100 || s.FontWeight > 900 {
		return fmt.Errorf("font weight %d out of range", s.FontWeight)
	}
	if s.LineHeight <= 0 {
		return fmt.Errorf("line height %v out of range", s.LineHeight)
	}
	if !style.ValidColor(s.Color) {
		return fmt.Errorf("invalid color %q", s.Color)
	}
	return nil
}
