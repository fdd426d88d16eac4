package style_test

import (
	"testing"

	"github.com/go-collage/collage/pkg/style"
)

func TestMerge_PartialPatchPreservesOtherFields(t *testing.T) {
	def := style.Default()
	existing := def.WithColor("#112233").WithWeight(700)

	merged := style.Merge(def, existing, style.TextStyle{FontSize: 24})

	if merged.FontSize != 24 {
		t.Errorf("FontSize: expected 24, got %v", merged.FontSize)
	}
	if merged.Color != "#112233" {
		t.Errorf("Color: expected existing #112233, got %q", merged.Color)
	}
	if merged.FontWeight != 700 {
		t.Errorf("FontWeight: expected existing 700, got %d", merged.FontWeight)
	}
	if merged.FontFamily != def.FontFamily {
		t.Errorf("FontFamily: expected default %q, got %q", def.FontFamily, merged.FontFamily)
	}
	if merged.LineHeight != def.LineHeight {
		t.Errorf("LineHeight: expected default %v, got %v", def.LineHeight, merged.LineHeight)
	}
}

func TestMerge_NeverLeavesFieldUnset(t *testing.T) {
	merged := style.Merge(style.Default(), style.TextStyle{}, style.TextStyle{})
	if merged != style.Default() {
		t.Errorf("merging empty styles should resolve to the default, got %+v", merged)
	}
}

func TestMerge_PatchOverridesExisting(t *testing.T) {
	def := style.Default()
	existing := def.WithColor("#ff0000")
	merged := style.Merge(def, existing, style.TextStyle{Color: "#0000ff"})
	if merged.Color != "#0000ff" {
		t.Errorf("expected patch color to win, got %q", merged.Color)
	}
}

func TestMerge_NoShadowClearsExistingShadow(t *testing.T) {
	def := style.Default()
	existing := def.WithShadow("1px 1px 2px black")

	merged := style.Merge(def, existing, style.TextStyle{}.NoShadow())
	if merged.TextShadow != "" {
		t.Errorf("expected cleared shadow, got %q", merged.TextShadow)
	}

	// The sentinel must not survive into the merged value: merging again
	// with an empty patch keeps the shadow cleared.
	again := style.Merge(def, merged, style.TextStyle{})
	if again.TextShadow != "" {
		t.Errorf("cleared shadow resurfaced as %q", again.TextShadow)
	}
}

func TestMerge_ZeroPatchShadowInherits(t *testing.T) {
	def := style.Default()
	existing := def.WithShadow("0 0 4px red")
	merged := style.Merge(def, existing, style.TextStyle{FontSize: 12})
	if merged.TextShadow != "0 0 4px red" {
		t.Errorf("expected inherited shadow, got %q", merged.TextShadow)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		r, g, b uint8
		a       uint8
	}{
		{in: "#ff0000", r: 0xFF, a: 0xFF},
		{in: "#f00", r: 0xFF, a: 0xFF},
		{in: "#11223344", r: 0x11, g: 0x22, b: 0x33, a: 0x44},
		{in: "red", r: 0xFF, a: 0xFF},
		{in: "RebeccaPurple", r: 0x66, g: 0x33, b: 0x99, a: 0xFF},
		{in: "", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "notacolor", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := style.ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != tt.a {
				t.Errorf("got %+v, want {%d %d %d %d}", c, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}
