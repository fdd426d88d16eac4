package span

// Selection is a range of logical offsets into the concatenated span text.
// Start and End are byte offsets with Start <= End; a collapsed selection
// (Start == End) is a caret.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SelectionNone denotes the absence of an active text selection, i.e. the
// whole-element context.
var SelectionNone = Selection{Start: -1, End: -1}

// Collapsed creates a caret selection at the given offset.
func Collapsed(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// IsValid returns true if the selection denotes an active text selection.
func (s Selection) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// IsCollapsed returns true if the selection has no length.
func (s Selection) IsCollapsed() bool {
	return s.Start == s.End
}

// Length returns the number of bytes covered by the selection.
func (s Selection) Length() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Clamp returns the selection limited to [0, length].
func (s Selection) Clamp(length int) Selection {
	if !s.IsValid() {
		return s
	}
	if s.Start > length {
		s.Start = length
	}
	if s.End > length {
		s.End = length
	}
	return s
}
