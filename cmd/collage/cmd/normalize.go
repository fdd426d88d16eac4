package cmd

import (
	"fmt"
	"os"

	"github.com/go-collage/collage/pkg/document"
)

func init() {
	RegisterCommand(&Command{
		Name:  "normalize",
		Short: "Rewrite a document in canonical form",
		Long: `Normalize a canvas document file.

Merges adjacent spans with equal styles, drops empty spans and collapses
per-line alignment overrides that match the block default, then rewrites
the file in place. With --stdout the result is printed instead.`,
		Usage: "collage normalize [--stdout] <doc.json>",
		Run:   runNormalize,
	})
}

func runNormalize(args []string) error {
	toStdout := false
	var paths []string
	for _, arg := range args {
		if arg == "--stdout" {
			toStdout = true
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) != 1 {
		return fmt.Errorf("normalize requires exactly one document file")
	}

	doc, err := document.LoadFile(paths[0])
	if err != nil {
		return err
	}
	doc.Normalize()

	if toStdout {
		return doc.Save(os.Stdout)
	}
	if err := doc.SaveFile(paths[0]); err != nil {
		return err
	}
	fmt.Printf("%s: normalized\n", paths[0])
	return nil
}
