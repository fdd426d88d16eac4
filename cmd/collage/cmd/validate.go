package cmd

import (
	"fmt"

	"github.com/go-collage/collage/pkg/document"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check document invariants",
		Long: `Validate a canvas document file.

Checks the format version, element invariants (every text element has at
least one span, adjacent spans carry distinct styles, style values are in
range, colors parse) and the canonical form of per-line alignment
overrides.`,
		Usage: "collage validate <doc.json>...",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("validate requires at least one document file")
	}
	for _, path := range args {
		doc, err := document.LoadFile(path)
		if err != nil {
			return err
		}
		if err := doc.Validate(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: ok (%d elements)\n", path, len(doc.Elements))
	}
	return nil
}
