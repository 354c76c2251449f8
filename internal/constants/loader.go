package constants

import (
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/nettogo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout of a constants file
type Document struct {
	Description string                 `yaml:"description,omitempty"`
	Years       []domain.YearConstants `yaml:"years"`
}

// LoadFromFile reads a constants document and builds a table from it.
// The file replaces the built-in table entirely.
func LoadFromFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open constants file %s: %w", filename, err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("constants file %s: %w", filename, err)
	}
	return t, nil
}

// Load decodes a constants document from r
func Load(r io.Reader) (*Table, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return New(doc.Years...)
}

// Export writes the table as a constants document
func (t *Table) Export(w io.Writer) error {
	doc := Document{Description: "contribution and tax constants per assessment year"}
	for _, y := range t.Years() {
		doc.Years = append(doc.Years, t.years[y])
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode constants: %w", err)
	}
	return enc.Close()
}
