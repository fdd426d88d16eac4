package span_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-collage/collage/pkg/span"
	"github.com/go-collage/collage/pkg/style"
)

var (
	s1 = style.Default()
	s2 = style.Default().WithColor("#ff0000")
	s3 = style.Default().WithWeight(700)
)

// checkInvariants verifies the span sequence invariants that must hold
// after every reconciler or applicator call.
func checkInvariants(t *testing.T, spans []span.Span, wantText string) {
	t.Helper()
	if len(spans) == 0 {
		t.Fatal("span sequence must never be empty")
	}
	if got := span.Text(spans); got != wantText {
		t.Fatalf("concatenation: got %q, want %q", got, wantText)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i-1].Style == spans[i].Style {
			t.Fatalf("adjacent spans %d and %d have equal styles", i-1, i)
		}
	}
	for i, sp := range spans {
		if sp.Text == "" && len(spans) > 1 {
			t.Fatalf("span %d is empty in a multi-span sequence", i)
		}
	}
}

func TestReconcile_InsertIntoSingleSpan(t *testing.T) {
	got, edit := span.Reconcile([]span.Span{{Text: "ABCD", Style: s1}}, "ABCD", "ABXCD")

	want := []span.Span{{Text: "ABXCD", Style: s1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if edit.Start != 2 || edit.OldText != "" || edit.NewText != "X" {
		t.Errorf("edit: got %+v, want insert of X at 2", edit)
	}
	checkInvariants(t, got, "ABXCD")
}

func TestReconcile_NoopReturnsSpansUnchanged(t *testing.T) {
	spans := []span.Span{{Text: "He", Style: s1}, {Text: "llo", Style: s2}}
	got, edit := span.Reconcile(spans, "Hello", "Hello")
	if !edit.IsNoop() {
		t.Errorf("expected noop edit, got %+v", edit)
	}
	if &got[0] != &spans[0] {
		t.Error("noop reconcile should return the input slice")
	}
}

func TestReconcile_DeleteAcrossSpans(t *testing.T) {
	spans := []span.Span{
		{Text: "Hel", Style: s1},
		{Text: "lo wo", Style: s2},
		{Text: "rld", Style: s3},
	}
	// The user deleted "lo wor"; the prefix diff slides the window right
	// over the shared "l" and sees "o worl" removed at offset 4 instead.
	got, edit := span.Reconcile(spans, "Hello world", "Helld")

	want := []span.Span{
		{Text: "Hel", Style: s1},
		{Text: "l", Style: s2},
		{Text: "d", Style: s3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if edit.NewText != "" || edit.OldText != "o worl" || edit.Start != 4 {
		t.Errorf("edit: got %+v, want deletion of \"o worl\" at 4", edit)
	}
	checkInvariants(t, got, "Helld")
}

func TestReconcile_InsertAtSpanBoundaryUsesFollowingStyle(t *testing.T) {
	spans := []span.Span{{Text: "AB", Style: s1}, {Text: "CD", Style: s2}}
	// "ABCD" -> "ABXCD": prefix 2, insertion lands exactly on the boundary,
	// so the inserted run takes the following span's style.
	got, _ := span.Reconcile(spans, "ABCD", "ABXCD")

	want := []span.Span{{Text: "AB", Style: s1}, {Text: "XCD", Style: s2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcile_AppendUsesLastStyle(t *testing.T) {
	spans := []span.Span{{Text: "AB", Style: s1}, {Text: "CD", Style: s2}}
	got, _ := span.Reconcile(spans, "ABCD", "ABCDE")

	want := []span.Span{{Text: "AB", Style: s1}, {Text: "CDE", Style: s2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcile_FullReplace(t *testing.T) {
	spans := []span.Span{{Text: "abc", Style: s1}, {Text: "def", Style: s2}}
	got, edit := span.Reconcile(spans, "abcdef", "xyz")

	want := []span.Span{{Text: "xyz", Style: s1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if edit.Start != 0 || edit.OldText != "abcdef" || edit.NewText != "xyz" {
		t.Errorf("edit: got %+v, want full replacement", edit)
	}
	checkInvariants(t, got, "xyz")
}

func TestReconcile_ReplaceWithSharedEdges(t *testing.T) {
	// "aa" -> "aba": prefix must win the shared "a" characters and the
	// suffix search must stop at the prefix boundary.
	spans := []span.Span{{Text: "aa", Style: s1}}
	got, edit := span.Reconcile(spans, "aa", "aba")

	checkInvariants(t, got, "aba")
	if len(got) != 1 {
		t.Fatalf("expected single merged span, got %d", len(got))
	}
	if edit.OldText != "" || edit.NewText != "b" {
		t.Errorf("edit: got %+v, want insertion of b", edit)
	}
}

func TestReconcile_DeleteEverything(t *testing.T) {
	spans := []span.Span{{Text: "Hi", Style: s2}}
	got, _ := span.Reconcile(spans, "Hi", "")

	if len(got) != 1 || got[0].Text != "" {
		t.Fatalf("expected single empty span, got %+v", got)
	}
	if got[0].Style != s2 {
		t.Error("empty span should keep the deleted text's style for typing")
	}
}

func TestReconcile_MultilinePaste(t *testing.T) {
	spans := []span.Span{{Text: "one\ntwo", Style: s1}}
	got, edit := span.Reconcile(spans, "one\ntwo", "one\nmid\ntwo")

	checkInvariants(t, got, "one\nmid\ntwo")
	if edit.NewText != "mid\n" && edit.NewText != "\nmid" {
		t.Errorf("edit middle: got %q", edit.NewText)
	}
}

func TestReconcile_ArbitraryEditsKeepInvariants(t *testing.T) {
	spans := []span.Span{
		{Text: "The quick ", Style: s1},
		{Text: "brown", Style: s2},
		{Text: " fox", Style: s3},
	}
	oldText := span.Text(spans)

	edits := []string{
		"The quick brown fox jumps",
		"The slow brown fox",
		"quick brown fox",
		"The quick  fox",
		"",
		"The quick brown fox",
		"entirely different",
	}
	for _, newText := range edits {
		t.Run(newText, func(t *testing.T) {
			got, _ := span.Reconcile(spans, oldText, newText)
			checkInvariants(t, got, newText)
		})
	}
}
