package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"

	"github.com/go-collage/collage/pkg/errors"
	"github.com/go-collage/collage/pkg/geometry"
)

// FormatVersion is the document format produced by this package. Older v1
// documents load transparently; a document written by a newer major version
// is rejected rather than silently misread.
const FormatVersion = "v1.2.0"

// Document is the persisted form of a canvas: plain JSON structures with
// order-significant element and span arrays.
type Document struct {
	Format   string     `json:"format"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Elements []*Element `json:"elements"`
}

// CheckFormat validates a document format version against the supported
// range.
func CheckFormat(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid format version %q", version)
	}
	if semver.Major(version) != semver.Major(FormatVersion) {
		return fmt.Errorf("unsupported format major version %s (supported: %s)", semver.Major(version), semver.Major(FormatVersion))
	}
	if semver.Compare(version, FormatVersion) > 0 {
		return fmt.Errorf("document format %s is newer than supported %s", version, FormatVersion)
	}
	return nil
}

// Load reads a document from r and validates its format version.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &errors.EditorError{Op: "document.Load", Kind: errors.KindPersist, Err: err}
	}
	if err := CheckFormat(doc.Format); err != nil {
		return nil, &errors.EditorError{Op: "document.Load", Kind: errors.KindPersist, Err: err}
	}
	return &doc, nil
}

// LoadFile reads a document from the file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.EditorError{Op: "document.LoadFile", Kind: errors.KindPersist, Err: err}
	}
	defer f.Close()
	return Load(f)
}

// Save writes the document to w, stamping the current format version.
func (d *Document) Save(w io.Writer) error {
	d.Format = FormatVersion
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return &errors.EditorError{Op: "document.Save", Kind: errors.KindPersist, Err: err}
	}
	return nil
}

// SaveFile writes the document to the file at path.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.EditorError{Op: "document.SaveFile", Kind: errors.KindPersist, Err: err}
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks every element's invariants.
func (d *Document) Validate() error {
	if err := CheckFormat(d.Format); err != nil {
		return err
	}
	seen := make(map[string]bool, len(d.Elements))
	for _, el := range d.Elements {
		if err := el.Validate(); err != nil {
			return err
		}
		if seen[el.ID] {
			return fmt.Errorf("duplicate element id %q", el.ID)
		}
		seen[el.ID] = true
	}
	return nil
}

// ContentBounds returns the union of every element's authored frame, or a
// zero rect for a document with no placed content.
func (d *Document) ContentBounds() geometry.Rect {
	var bounds geometry.Rect
	for _, el := range d.Elements {
		b := el.Bounds()
		if b.IsEmpty() {
			continue
		}
		if bounds.IsEmpty() {
			bounds = b
		} else {
			bounds = bounds.Union(b)
		}
	}
	return bounds
}

// Normalize restores invariants on every text element.
func (d *Document) Normalize() {
	for _, el := range d.Elements {
		if el.Kind == KindText && len(el.Spans) > 0 {
			el.Normalize(el.Spans[0].Style)
		}
	}
}
