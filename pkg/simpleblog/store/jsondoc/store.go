// Package jsondoc persists the post collection as a single pretty-printed
// JSON array in one document. The document stays diffable and hand-editable;
// every save rewrites the full snapshot through a temp file and an atomic
// rename so a failed write never leaves a half-written document behind.
package jsondoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Store is a JSON-document implementation of the simpleblog.PostStore
// interface.
type Store struct {
	path string
}

// Config options for the JSON document store
type Config struct {
	Path string // Location of the posts document

	// CreateMissing seeds an empty collection when the document does not
	// exist yet. Load still fails if the document disappears later.
	CreateMissing bool
}

// New creates a new JSON document post store
func New(config Config) (*Store, error) {
	if config.Path == "" {
		return nil, errors.New("document path is required")
	}

	if config.CreateMissing {
		if _, err := os.Stat(config.Path); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create document directory: %w", err)
			}
			if err := os.WriteFile(config.Path, []byte("[]\n"), 0644); err != nil {
				return nil, fmt.Errorf("failed to seed document: %w", err)
			}
		}
	}

	return &Store{path: config.Path}, nil
}

// Load reads the entire collection from the document
func (s *Store) Load(ctx context.Context) ([]simpleblog.Post, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &simpleblog.StoreError{
			Op:   "load",
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", simpleblog.ErrStorageRead, err),
		}
	}

	var posts []simpleblog.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, &simpleblog.StoreError{
			Op:   "load",
			Path: s.path,
			Err:  fmt.Errorf("%w: document is not a post array: %v", simpleblog.ErrStorageRead, err),
		}
	}

	return posts, nil
}

// Save serializes the full collection back to the document, replacing it
// atomically
func (s *Store) Save(ctx context.Context, posts []simpleblog.Post) error {
	// An empty collection must serialize as [], never null.
	if posts == nil {
		posts = []simpleblog.Post{}
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return &simpleblog.StoreError{
			Op:   "save",
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", simpleblog.ErrStorageWrite, err),
		}
	}
	data = append(data, '\n')

	// The temp file lives next to the document so the final rename stays on
	// one filesystem.
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &simpleblog.StoreError{
			Op:   "save",
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", simpleblog.ErrStorageWrite, err),
		}
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return &simpleblog.StoreError{
			Op:   "save",
			Path: s.path,
			Err:  fmt.Errorf("%w: %v", simpleblog.ErrStorageWrite, err),
		}
	}

	return nil
}
