package cmd

import (
	"fmt"
	"strings"

	"github.com/go-collage/collage/pkg/document"
)

func init() {
	RegisterCommand(&Command{
		Name:  "stats",
		Short: "Show document statistics",
		Long: `Show statistics for a canvas document file.

Prints per-kind element counts and, for text elements, span, line and
alignment-override totals.`,
		Usage: "collage stats <doc.json>",
		Run:   runStats,
	})
}

func runStats(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("stats requires exactly one document file")
	}

	doc, err := document.LoadFile(args[0])
	if err != nil {
		return err
	}

	kinds := map[document.ElementKind]int{}
	spans, lines, chars, overrides := 0, 0, 0, 0
	for _, el := range doc.Elements {
		kinds[el.Kind]++
		if el.Kind != document.KindText {
			continue
		}
		spans += len(el.Spans)
		text := el.FullText()
		chars += len(text)
		lines += strings.Count(text, "\n") + 1
		for _, a := range el.LineAlignments {
			if a != document.AlignUnset {
				overrides++
			}
		}
	}

	fmt.Printf("Document: %s (format %s, %gx%g)\n", args[0], doc.Format, doc.Width, doc.Height)
	if b := doc.ContentBounds(); !b.IsEmpty() {
		fmt.Printf("Content bounds: (%g,%g)-(%g,%g)\n", b.Left, b.Top, b.Right, b.Bottom)
	}
	fmt.Println()
	fmt.Println("Elements:")
	for _, kind := range []document.ElementKind{document.KindText, document.KindImage, document.KindCutout} {
		if n := kinds[kind]; n > 0 {
			fmt.Printf("  %-8s %d\n", string(kind)+":", n)
		}
	}
	fmt.Println()
	fmt.Printf("Text: %d spans, %d lines, %d bytes, %d alignment overrides\n", spans, lines, chars, overrides)
	return nil
}
