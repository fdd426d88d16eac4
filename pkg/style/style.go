// Package style defines the character-level text style value type and its
// merge rules. A TextStyle is an immutable value; equality is structural,
// which the comparable struct gives us for free.
package style

// noShadow is a sentinel for explicitly clearing an inherited text shadow.
// The plain zero value ("") means "unset" during merging, so a patch that
// wants to remove a shadow needs a distinguishable value. The sentinel never
// escapes a merge: Merge collapses it back to the empty string. Users should
// call NoShadow rather than using this constant directly.
const noShadow = "\x00none"

// TextStyle describes the visual style of a run of characters. All fields
// are plain primitives so the struct serializes directly and compares with
// ==. During merging, zero-valued fields inherit from the base style and
// non-zero fields override it.
type TextStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight int     `json:"fontWeight"`
	Color      string  `json:"color"`
	TextShadow string  `json:"textShadow,omitempty"`
	LineHeight float64 `json:"lineHeight"`
}

// Default returns the block-level default style applied where nothing more
// specific has been set.
func Default() TextStyle {
	return TextStyle{
		FontFamily: "Arial",
		FontSize:   16,
		FontWeight: 400,
		Color:      "#000000",
		TextShadow: "",
		LineHeight: 1.2,
	}
}

// mergeFrom copies base field values into s for any field that is zero-valued
// in s. Non-zero fields in s are left untouched (the more specific style wins).
func (s TextStyle) mergeFrom(base TextStyle) TextStyle {
	if s.FontFamily == "" {
		s.FontFamily = base.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = base.FontSize
	}
	if s.FontWeight == 0 {
		s.FontWeight = base.FontWeight
	}
	if s.Color == "" {
		s.Color = base.Color
	}
	if s.TextShadow == "" {
		s.TextShadow = base.TextShadow
	}
	if s.LineHeight == 0 {
		s.LineHeight = base.LineHeight
	}
	return s
}

// Merge resolves a partial style patch against an existing span style and
// the block default. Precedence is fixed: def < existing < patch, so a patch
// carrying only a font size never clobbers unrelated properties and the
// result never has an unset field. Sentinel values are collapsed, so the
// returned style is always a plain value safe for structural comparison.
func Merge(def, existing, patch TextStyle) TextStyle {
	resolved := patch.mergeFrom(existing.mergeFrom(def))
	if resolved.TextShadow == noShadow {
		resolved.TextShadow = ""
	}
	return resolved
}

// NoShadow returns a copy of the patch that explicitly clears the text
// shadow, overriding whatever the existing span style carries.
func (s TextStyle) NoShadow() TextStyle {
	s.TextShadow = noShadow
	return s
}

// WithSize returns a copy with the specified font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

// WithWeight returns a copy with the specified font weight (100-900).
func (s TextStyle) WithWeight(weight int) TextStyle {
	s.FontWeight = weight
	return s
}

// WithColor returns a copy with the specified color string.
func (s TextStyle) WithColor(color string) TextStyle {
	s.Color = color
	return s
}

// WithFamily returns a copy with the specified font family.
func (s TextStyle) WithFamily(name string) TextStyle {
	s.FontFamily = name
	return s
}

// WithShadow returns a copy with the specified CSS shadow string.
func (s TextStyle) WithShadow(shadow string) TextStyle {
	s.TextShadow = shadow
	return s
}

// WithLineHeight returns a copy with the specified line height multiplier.
func (s TextStyle) WithLineHeight(height float64) TextStyle {
	s.LineHeight = height
	return s
}
