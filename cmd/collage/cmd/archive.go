package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-collage/collage/cmd/collage/internal/config"
	"github.com/go-collage/collage/cmd/collage/internal/store"
	"github.com/go-collage/collage/pkg/document"
)

func init() {
	RegisterCommand(&Command{
		Name:  "archive",
		Short: "Manage the local document archive",
		Long: `Manage the SQLite-backed local document archive.

Subcommands:
  put <doc.json> [id]   Store a document (id defaults to the file basename)
  get <id> <out.json>   Write an archived document to a file
  list                  List archived documents
  rm <id>               Remove an archived document

The archive location comes from collage.yaml (archive.path) and defaults
to ~/.collage/archive.db.`,
		Usage: "collage archive <put|get|list|rm> [args]",
		Run:   runArchive,
	})
}

func runArchive(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("archive requires a subcommand: put, get, list or rm")
	}

	cfg, err := config.Resolve(".")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.ArchivePath), 0o755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}
	archive, err := store.Open(cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	switch args[0] {
	case "put":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: collage archive put <doc.json> [id]")
		}
		doc, err := document.LoadFile(args[1])
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(filepath.Base(args[1]), filepath.Ext(args[1]))
		if len(args) == 3 {
			id = args[2]
		}
		if err := archive.Put(id, doc); err != nil {
			return err
		}
		fmt.Printf("archived %s as %q\n", args[1], id)
		return nil

	case "get":
		if len(args) != 3 {
			return fmt.Errorf("usage: collage archive get <id> <out.json>")
		}
		doc, err := archive.Get(args[1])
		if err != nil {
			return err
		}
		if err := doc.SaveFile(args[2]); err != nil {
			return err
		}
		fmt.Printf("wrote %q to %s\n", args[1], args[2])
		return nil

	case "list":
		entries, err := archive.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("archive is empty")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("  %-24s %-8s %s\n", e.ID, e.Format, e.Updated.Format("2006-01-02 15:04"))
		}
		return nil

	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: collage archive rm <id>")
		}
		if err := archive.Delete(args[1]); err != nil {
			return err
		}
		fmt.Printf("removed %q\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown archive subcommand %q", args[0])
	}
}
