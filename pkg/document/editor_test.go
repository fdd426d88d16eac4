package document

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-collage/collage/pkg/geometry"
	"github.com/go-collage/collage/pkg/overlay"
	"github.com/go-collage/collage/pkg/span"
	"github.com/go-collage/collage/pkg/style"
	"github.com/go-collage/collage/pkg/surface"
)

var (
	plain = style.Default()
	red   = style.Default().WithColor("#ff0000")
)

func newTestEditor(t *testing.T, spans ...span.Span) *Editor {
	t.Helper()
	el := NewTextElement("t1", plain)
	if len(spans) > 0 {
		el.Spans = spans
	}
	return NewEditor(el, plain)
}

func TestEditor_SyncFromSurfaceTypedCharacter(t *testing.T) {
	ed := newTestEditor(t,
		span.Span{Text: "He", Style: plain},
		span.Span{Text: "llo", Style: red},
	)
	changes := 0
	ed.OnChanged = func() { changes++ }

	node := surface.NewText("Hexllo")
	caret := surface.Position{Node: node, Offset: 3}
	ed.SyncFromSurface(surface.NewRoot(surface.NewSegment(node)), caret, caret)

	want := []span.Span{{Text: "He", Style: plain}, {Text: "xllo", Style: red}}
	if diff := cmp.Diff(want, ed.Element().Spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if got := ed.Controller().Value(); got.Text != "Hexllo" || got.Selection != span.Collapsed(3) {
		t.Errorf("controller value: %+v", got)
	}
	if changes != 1 {
		t.Errorf("OnChanged calls: got %d, want 1", changes)
	}
}

func TestEditor_SyncFromSurfaceNoopSkipsCallback(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "same", Style: plain})
	changes := 0
	ed.OnChanged = func() { changes++ }

	node := surface.NewText("same")
	pos := surface.Position{Node: node, Offset: 4}
	ed.SyncFromSurface(surface.NewRoot(surface.NewSegment(node)), pos, pos)

	if changes != 0 {
		t.Errorf("OnChanged fired on a selection-only event (%d calls)", changes)
	}
	if got := ed.Controller().Selection(); got != span.Collapsed(4) {
		t.Errorf("selection: got %+v", got)
	}
}

func TestEditor_SyncFromSurfaceNormalizesReversedSelection(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "hello", Style: plain})

	node := surface.NewText("hello")
	ed.SyncFromSurface(
		surface.NewRoot(surface.NewSegment(node)),
		surface.Position{Node: node, Offset: 4},
		surface.Position{Node: node, Offset: 1},
	)

	if got := ed.Controller().Selection(); got.Start != 1 || got.End != 4 {
		t.Errorf("selection: got %+v, want {1 4}", got)
	}
}

func TestEditor_SyncFromSurfaceLineSplitDuplicatesOverride(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "AB", Style: plain})
	ed.Element().LineAlignments = []Alignment{AlignCenter}

	// The surface broke "AB" into two line segments.
	first := surface.NewText("A")
	second := surface.NewText("B")
	pos := surface.Position{Node: second, Offset: 0}
	ed.SyncFromSurface(surface.NewRoot(surface.NewSegment(first), surface.NewSegment(second)), pos, pos)

	want := []Alignment{AlignCenter, AlignCenter}
	if diff := cmp.Diff(want, ed.Element().LineAlignments); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
	if ed.Element().FullText() != "A\nB" {
		t.Errorf("text: got %q", ed.Element().FullText())
	}
}

func TestEditor_ApplyStyleSplitsAndRestoresSelection(t *testing.T) {
	surface.RegisterDispatch(func(cb func()) { cb() })
	defer surface.RegisterDispatch(nil)

	ed := newTestEditor(t, span.Span{Text: "Hello", Style: plain})
	ed.Controller().SetSelection(span.Selection{Start: 1, End: 3})

	ed.ApplyStyle(style.TextStyle{Color: "#ff0000"})

	want := []span.Span{
		{Text: "H", Style: plain},
		{Text: "el", Style: red},
		{Text: "lo", Style: plain},
	}
	if diff := cmp.Diff(want, ed.Element().Spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if got := ed.Controller().Selection(); got.Start != 1 || got.End != 3 {
		t.Errorf("selection not restored: %+v", got)
	}
}

func TestEditor_ApplyStyleWithoutSelectionIsNoop(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "Hello", Style: plain})
	ed.Controller().SetSelection(span.SelectionNone)
	changes := 0
	ed.OnChanged = func() { changes++ }

	ed.ApplyStyle(style.TextStyle{Color: "#ff0000"})

	if changes != 0 || ed.Element().Spans[0].Style != plain {
		t.Error("style applied without an active selection")
	}
}

func TestEditor_RestoreSuppressesEcho(t *testing.T) {
	surface.RegisterDispatch(func(cb func()) { cb() })
	defer surface.RegisterDispatch(nil)

	ed := newTestEditor(t, span.Span{Text: "Hello", Style: plain})
	ed.Controller().SetSelection(span.Selection{Start: 0, End: 5})

	// The programmatic restore makes the surface fire a selection event of
	// its own; that echo must not re-enter the reconciler.
	unsubscribe := ed.Controller().AddListener(func() {
		if ed.restoring {
			node := surface.NewText("CHANGED")
			pos := surface.Position{Node: node, Offset: 0}
			ed.SyncFromSurface(surface.NewRoot(surface.NewSegment(node)), pos, pos)
		}
	})
	defer unsubscribe()

	ed.ApplyStyle(style.TextStyle{Color: "#ff0000"})

	if got := ed.Element().FullText(); got != "Hello" {
		t.Errorf("echo reached the model: text is %q", got)
	}
}

func TestEditor_TypingStyle(t *testing.T) {
	ed := newTestEditor(t,
		span.Span{Text: "ab", Style: plain},
		span.Span{Text: "cd", Style: red},
	)

	// At the boundary the following span's style wins, matching what typed
	// input would receive from reconciliation.
	ed.Controller().SetSelection(span.Collapsed(2))
	if got := ed.TypingStyle(); got != red {
		t.Errorf("boundary typing style: got %+v", got)
	}

	ed.Controller().SetSelection(span.SelectionNone)
	if got := ed.TypingStyle(); got != red {
		t.Errorf("no-selection typing style: got %+v, want last span's", got)
	}
}

func TestEditor_ApplyAlignmentToSelectedLines(t *testing.T) {
	surface.RegisterDispatch(func(cb func()) { cb() })
	defer surface.RegisterDispatch(nil)

	ed := newTestEditor(t, span.Span{Text: "a\nb\nc", Style: plain})
	ed.Controller().SetText("a\nb\nc")
	ed.Controller().SetSelection(span.Selection{Start: 0, End: 3})

	ed.ApplyAlignment(AlignCenter)

	want := []Alignment{AlignCenter, AlignCenter}
	if diff := cmp.Diff(want, ed.Element().LineAlignments); diff != "" {
		t.Errorf("overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestEditor_ApplyAlignmentWithoutSelectionSetsDefault(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "a\nb", Style: plain})
	ed.Element().LineAlignments = []Alignment{AlignRight, AlignUnset}
	ed.Controller().SetSelection(span.SelectionNone)

	ed.ApplyAlignment(AlignRight)

	if ed.Element().TextAlign != AlignRight {
		t.Errorf("block default: got %v", ed.Element().TextAlign)
	}
	if ed.Element().LineAlignments != nil {
		t.Errorf("overrides should collapse against the new default: %v", ed.Element().LineAlignments)
	}
}

func TestEditor_SelectionRects(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "hi", Style: plain.WithSize(16).WithLineHeight(1.25)})
	ed.SetTransform(overlay.Transform{Width: 100, Height: 40, Rotation: 0, Scale: 1})

	wrapper := geometry.RectFromLTWH(0, 0, 100, 40)
	device := []geometry.Rect{geometry.RectFromLTWH(10, 5, 30, 20)}

	got := ed.SelectionRects(device, wrapper)
	if len(got) != 1 {
		t.Fatalf("rect count: got %d", len(got))
	}
	if !got[0].ApproxEqual(device[0]) {
		t.Errorf("identity transform: got %+v, want %+v", got[0], device[0])
	}

	if got := ed.SelectionRects(nil, wrapper); got != nil {
		t.Errorf("empty selection: got %v, want nil", got)
	}
}

func TestEditor_ReplaceRange(t *testing.T) {
	ed := newTestEditor(t,
		span.Span{Text: "Hello ", Style: plain},
		span.Span{Text: "world", Style: red},
	)
	changes := 0
	ed.OnChanged = func() { changes++ }

	ed.replaceRange(span.Selection{Start: 6, End: 11}, "there")

	if got := ed.Element().FullText(); got != "Hello there" {
		t.Errorf("text: got %q", got)
	}
	if got := ed.Controller().Selection(); got != span.Collapsed(11) {
		t.Errorf("selection: got %+v, want collapsed at 11", got)
	}
	if changes != 1 {
		t.Errorf("OnChanged calls: got %d", changes)
	}
}

func TestEditor_SelectedText(t *testing.T) {
	ed := newTestEditor(t, span.Span{Text: "Hello world", Style: plain})
	ed.Controller().SetText("Hello world")

	ed.Controller().SetSelection(span.Selection{Start: 6, End: 11})
	if got := ed.SelectedText(); got != "world" {
		t.Errorf("selected text: got %q", got)
	}

	ed.Controller().SetSelection(span.Collapsed(3))
	if got := ed.SelectedText(); got != "" {
		t.Errorf("collapsed selection: got %q", got)
	}

	ed.Controller().SetSelection(span.SelectionNone)
	if got := ed.SelectedText(); got != "" {
		t.Errorf("no selection: got %q", got)
	}
}
