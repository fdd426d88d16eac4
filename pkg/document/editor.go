package document

import (
	"github.com/atotto/clipboard"

	"github.com/go-collage/collage/pkg/errors"
	"github.com/go-collage/collage/pkg/geometry"
	"github.com/go-collage/collage/pkg/overlay"
	"github.com/go-collage/collage/pkg/span"
	"github.com/go-collage/collage/pkg/style"
	"github.com/go-collage/collage/pkg/surface"
)

// Editor wires a text element to its editable surface. All methods run
// synchronously inside the embedder's event callbacks; the only deferral is
// the next-tick selection restore after a programmatic style change, routed
// through surface.Dispatch so the surface mutation settles first.
type Editor struct {
	element *Element
	ctrl    *surface.Controller
	def     style.TextStyle

	transform overlay.Transform
	outline   float64

	restoring bool // suppress echo during programmatic selection restore

	// OnChanged is called after the span model changes (any edit, paste,
	// cut or style command). The embedder re-renders the surface from the
	// spans in response.
	OnChanged func()
}

// NewEditor creates an editor shell for the given text element.
func NewEditor(el *Element, def style.TextStyle) *Editor {
	return &Editor{
		element: el,
		ctrl:    surface.NewController(el.FullText()),
		def:     def,
	}
}

// Element returns the edited element.
func (e *Editor) Element() *Element {
	return e.element
}

// Controller returns the editing controller carrying text and selection.
func (e *Editor) Controller() *surface.Controller {
	return e.ctrl
}

// SetTransform updates the element's placement state as reported by the
// manipulation layer. Consumed read-only by selection projection.
func (e *Editor) SetTransform(t overlay.Transform) {
	e.transform = t
}

// SetOutlineWidth sets the active outline/border width used to align the
// selection overlay with the padding box.
func (e *Editor) SetOutlineWidth(w float64) {
	e.outline = w
}

// SyncFromSurface reconciles an observed surface mutation back into the
// span model. root is the mutated surface tree; selStart and selEnd are the
// captured selection endpoints, mapped to logical offsets here, exactly
// once. Invoked on every input event.
func (e *Editor) SyncFromSurface(root *surface.Node, selStart, selEnd surface.Position) {
	defer errors.Recover("editor.SyncFromSurface")
	if e.restoring {
		return
	}

	oldText := e.element.FullText()
	newText := surface.Text(root)

	spans, edit := span.Reconcile(e.element.Spans, oldText, newText)
	e.element.Spans = spans
	e.element.LineAlignments = ApplyAlignmentEdit(e.element.LineAlignments, e.element.TextAlign, oldText, edit)

	sel := span.Selection{
		Start: surface.ToOffset(root, selStart),
		End:   surface.ToOffset(root, selEnd),
	}
	if sel.End < sel.Start {
		sel.Start, sel.End = sel.End, sel.Start
	}
	e.ctrl.SetValue(surface.Value{Text: newText, Selection: sel})

	if !edit.IsNoop() {
		e.changed()
	}
}

// ApplyStyle applies a partial style patch to the current selection, then
// restores focus and selection on the next tick so the caret survives the
// re-render. Without an active selection this is a no-op; whole-element
// style commands go through the element directly.
func (e *Editor) ApplyStyle(patch style.TextStyle) {
	sel := e.ctrl.Selection()
	if !sel.IsValid() {
		return
	}
	sel = sel.Clamp(len(e.ctrl.Text()))
	e.element.Spans = span.ApplyStyle(e.element.Spans, sel, patch, e.def)
	e.changed()
	e.restoreSelection(sel)
}

// TypingStyle returns the style the next typed character would receive,
// resolved at the selection start.
func (e *Editor) TypingStyle() style.TextStyle {
	sel := e.ctrl.Selection()
	if !sel.IsValid() {
		return span.StyleAt(e.element.Spans, len(e.ctrl.Text()))
	}
	return span.StyleAt(e.element.Spans, sel.Start)
}

// ApplyAlignment sets the alignment for the lines covered by the current
// selection. Without an active selection it sets the block default instead,
// re-canonicalizing the overrides against it.
func (e *Editor) ApplyAlignment(a Alignment) {
	sel := e.ctrl.Selection()
	if !sel.IsValid() {
		e.element.TextAlign = a
		e.element.LineAlignments = CanonicalAlignments(e.element.LineAlignments, a)
		e.changed()
		return
	}

	text := e.element.FullText()
	sel = sel.Clamp(len(text))
	first := lineAt(text, sel.Start)
	last := lineAt(text, sel.End)

	aligns := e.element.LineAlignments
	for len(aligns) <= last {
		aligns = append(aligns, AlignUnset)
	}
	for line := first; line <= last; line++ {
		aligns[line] = a
	}
	e.element.LineAlignments = CanonicalAlignments(aligns, e.element.TextAlign)
	e.changed()
	e.restoreSelection(sel)
}

// SelectionRects projects the native device-space selection rectangles into
// the element's local frame for the highlight overlay. Pure and idempotent:
// the selection-change feedback loop triggered by a programmatic restore
// recomputes the same rectangles.
func (e *Editor) SelectionRects(device []geometry.Rect, wrapper geometry.Rect) []geometry.Rect {
	active := e.TypingStyle()
	metrics := overlay.LineMetrics{FontSize: active.FontSize, LineHeight: active.LineHeight}
	return overlay.ProjectSelection(device, wrapper, e.transform, metrics, e.outline)
}

// SelectedText returns the plain text covered by the current selection.
func (e *Editor) SelectedText() string {
	sel := e.ctrl.Selection()
	if !sel.IsValid() || sel.IsCollapsed() {
		return ""
	}
	text := e.ctrl.Text()
	sel = sel.Clamp(len(text))
	return text[sel.Start:sel.End]
}

// CopySelection places the selected plain text on the system clipboard.
func (e *Editor) CopySelection() error {
	selected := e.SelectedText()
	if selected == "" {
		return nil
	}
	if err := clipboard.WriteAll(selected); err != nil {
		err2 := &errors.EditorError{Op: "editor.CopySelection", Kind: errors.KindSurface, Err: err, Element: e.element.ID}
		errors.Report(err2)
		return err2
	}
	return nil
}

// CutSelection copies the selected text and deletes it from the element.
func (e *Editor) CutSelection() error {
	if err := e.CopySelection(); err != nil {
		return err
	}
	sel := e.ctrl.Selection()
	if sel.IsValid() && !sel.IsCollapsed() {
		e.replaceRange(sel, "")
	}
	return nil
}

// Paste inserts the system clipboard's plain text at the current selection.
// The insertion runs through reconciliation like any other mutation, so the
// pasted run inherits the boundary span's style.
func (e *Editor) Paste() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		err2 := &errors.EditorError{Op: "editor.Paste", Kind: errors.KindSurface, Err: err, Element: e.element.ID}
		errors.Report(err2)
		return err2
	}
	sel := e.ctrl.Selection()
	if !sel.IsValid() {
		sel = span.Collapsed(len(e.ctrl.Text()))
	}
	e.replaceRange(sel, text)
	return nil
}

// replaceRange replaces the selected range with text through the
// reconciler, collapsing the selection after the insertion.
func (e *Editor) replaceRange(sel span.Selection, text string) {
	oldText := e.element.FullText()
	sel = sel.Clamp(len(oldText))
	newText := oldText[:sel.Start] + text + oldText[sel.End:]

	spans, edit := span.Reconcile(e.element.Spans, oldText, newText)
	e.element.Spans = spans
	e.element.LineAlignments = ApplyAlignmentEdit(e.element.LineAlignments, e.element.TextAlign, oldText, edit)
	e.ctrl.SetValue(surface.Value{Text: newText, Selection: span.Collapsed(sel.Start + len(text))})
	e.changed()
}

// restoreSelection re-applies the selection on the next tick, after the
// embedder has re-rendered the surface from the updated spans. The restore
// itself fires a selection-change event; the restoring flag keeps that echo
// from re-entering the reconciler.
func (e *Editor) restoreSelection(sel span.Selection) {
	surface.Dispatch(func() {
		e.restoring = true
		e.ctrl.SetSelection(sel)
		e.restoring = false
	})
}

func (e *Editor) changed() {
	if e.OnChanged != nil {
		e.OnChanged()
	}
}

// lineAt returns the 0-based line index containing the byte offset.
func lineAt(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	line := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}
