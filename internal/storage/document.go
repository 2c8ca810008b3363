package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vidyasagar/dsurf/internal/history"
)

// ErrCorruptDocument marks a history file that exists but cannot be decoded.
// Callers treat it as a warning and start from an empty history.
var ErrCorruptDocument = errors.New("corrupt history document")

// DocumentStore reads and writes the history document at a fixed path.
type DocumentStore struct {
	path string
}

// NewDocumentStore creates a store for the history file in dataDir.
func NewDocumentStore(dataDir string) (*DocumentStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &DocumentStore{path: filepath.Join(dataDir, "history.json")}, nil
}

// NewDocumentStoreAt creates a store for an explicit file path.
func NewDocumentStoreAt(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// Path returns the history file location.
func (ds *DocumentStore) Path() string {
	return ds.path
}

// Load reads the history document. A missing file yields an empty document
// with no error. An unreadable or malformed file yields an empty document
// and an ErrCorruptDocument-wrapped error so the caller can log a warning;
// the session always starts with usable state.
func (ds *DocumentStore) Load() (history.Document, error) {
	doc := history.EmptyDocument()

	data, err := os.ReadFile(ds.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return history.EmptyDocument(), fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	// Index must default to -1 when the field is absent, so decode over a
	// pre-set value.
	doc.Index = -1
	if err := json.Unmarshal(data, &doc); err != nil {
		return history.EmptyDocument(), fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	if doc.Version == 0 {
		doc.Version = history.DocumentVersion
	}
	return doc, nil
}

// Save writes the document with a safe-replace: the new content goes to a
// temp file in the same directory and is renamed over the target, so a
// crash mid-write cannot leave behind a document that fails to Load.
func (ds *DocumentStore) Save(doc history.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(ds.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp := ds.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if err := os.Rename(tmp, ds.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}
