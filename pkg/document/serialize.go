package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document Serialization API
// =============================================================================

// File is the canonical serialization format for a document: the undo-tracked
// state shape plus canvas settings and the design-token table.
type File struct {
	Name             string         `json:"name,omitempty" bson:"name,omitempty"`
	Canvas           CanvasSettings `json:"canvas" bson:"canvas"`
	Tokens           []Token        `json:"tokens,omitempty" bson:"tokens,omitempty"`
	Blocks           []*Block       `json:"blocks" bson:"blocks"`
	BlockTypeCounter map[Type]int   `json:"blockTypeCounters,omitempty" bson:"block_type_counters,omitempty"`
}

// ToFile converts a document to its serialization format.
func (d *Document) ToFile(name string) File {
	snap := d.Snapshot()
	return File{
		Name:             name,
		Canvas:           d.Canvas,
		Tokens:           d.Tokens(),
		Blocks:           snap.Blocks,
		BlockTypeCounter: snap.BlockTypeCounter,
	}
}

// FromFile builds a document from its serialization format.
// Unknown block types are preserved as-is; structural invariants (dangling
// parent ids) are tolerated at read time and degrade to top-level placement.
func FromFile(f File) *Document {
	d := New()
	if f.Canvas != (CanvasSettings{}) {
		d.Canvas = f.Canvas
	}
	d.tokens = append([]Token(nil), f.Tokens...)
	counters := f.BlockTypeCounter
	if counters == nil {
		counters = make(map[Type]int)
	}
	d.Restore(State{Blocks: f.Blocks, BlockTypeCounter: counters})
	return d
}

// Marshal converts a document to pretty-printed JSON bytes.
func Marshal(d *Document, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(d, name, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a document.
func Unmarshal(data []byte) (*Document, error) {
	return readFrom(bytes.NewReader(data))
}

// WriteFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(d *Document, name, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(d, name, f)
}

// ReadFile reads a JSON file and returns the decoded document.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(d *Document, name string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.ToFile(name)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Document, error) {
	var f File
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromFile(f), nil
}
