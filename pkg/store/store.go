// Package store persists documents by name. Backends share one interface so
// the CLI and the preview server can run against local files or a shared
// MongoDB without caring which.
package store

import (
	"context"
	"errors"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a named document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidName is returned for names the backend cannot store safely.
	ErrInvalidName = errors.New("invalid document name")
)

// Store is the interface for document persistence backends.
type Store interface {
	// Get retrieves a document by name. Returns ErrNotFound when absent.
	Get(ctx context.Context, name string) (*document.Document, error)

	// Save stores a document under the given name, replacing any previous
	// version.
	Save(ctx context.Context, name string, d *document.Document) error

	// Delete removes a named document. Deleting a missing document returns
	// ErrNotFound.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored documents, sorted.
	List(ctx context.Context) ([]string, error)

	Close(ctx context.Context) error
}
