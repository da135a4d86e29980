package store

import (
	"context"
	"errors"
	"testing"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	return s
}

func sampleDocument() *document.Document {
	d := document.New()
	d.Add(&document.Block{
		Type:    document.TypeText,
		Content: "persisted",
		Layout:  document.Layout{X: 10, Y: 20, Width: 200, Height: 40},
	})
	d.AddToken(document.Token{ID: "brand", Name: "Brand", Value: "#336699", Kind: document.TokenColor})
	return d
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "newsletter", sampleDocument()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Get(ctx, "newsletter")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Len() != 1 {
		t.Errorf("loaded document has %d blocks, want 1", got.Len())
	}
	if got.Blocks()[0].Content != "persisted" {
		t.Errorf("content = %q", got.Blocks()[0].Content)
	}
	if len(got.Tokens()) != 1 {
		t.Errorf("loaded document has %d tokens, want 1", len(got.Tokens()))
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreDeleteMissing(t *testing.T) {
	s := newStore(t)
	err := s.Delete(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreList(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := s.Save(ctx, name, sampleDocument()); err != nil {
			t.Fatalf("Save(%s) error: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFileStoreRejectsUnsafeNames(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"", "a/b", `a\b`, "../escape"} {
		if err := s.Save(ctx, name, sampleDocument()); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Save(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestFileStoreSaveReplaces(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "doc", sampleDocument()); err != nil {
		t.Fatal(err)
	}
	replacement := document.New()
	if err := s.Save(ctx, "doc", replacement); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, "doc")
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("replaced document has %d blocks, want 0", got.Len())
	}
}
