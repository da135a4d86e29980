package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/SharadhNaidu/mailcanvas/pkg/document"
	"github.com/SharadhNaidu/mailcanvas/pkg/errors"
)

// FileStore keeps each document as a JSON file in a directory. It is the
// backend for single-user CLI usage.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-backed store. If baseDir is empty it defaults
// to ~/.config/mailcanvas/documents/.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "mailcanvas", "documents")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, name string) (*document.Document, error) {
	path, err := s.documentPath(name)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "read document %q", name)
	}
	d, err := document.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "parse document %q", name)
	}
	return d, nil
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, name string, d *document.Document) error {
	path, err := s.documentPath(name)
	if err != nil {
		return err
	}
	data, err := document.Marshal(d, name)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "marshal document %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "write document %q", name)
	}
	return nil
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	path, err := s.documentPath(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreWrite, err, "remove document %q", name)
	}
	return nil
}

// List implements Store.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreRead, err, "list documents")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Close implements Store.
func (s *FileStore) Close(ctx context.Context) error { return nil }

// Path returns the base directory for document files.
func (s *FileStore) Path() string { return s.baseDir }

// documentPath validates the name and maps it to a file path. Separators and
// traversal sequences are rejected rather than sanitized, so names round-trip
// exactly through List.
func (s *FileStore) documentPath(name string) (string, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return "", fmt.Errorf("%q: %w: %s", name, ErrInvalidName, errors.UserMessage(err))
	}
	return filepath.Join(s.baseDir, name+".json"), nil
}

var _ Store = (*FileStore)(nil)
