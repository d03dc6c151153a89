package simpleblog

import (
	"context"
	"io"
)

// PostStore owns the durable post collection. Load and Save always move the
// whole collection: Save is a full-snapshot rewrite, never an append.
type PostStore interface {
	Load(ctx context.Context) ([]Post, error)
	Save(ctx context.Context, posts []Post) error
}

// ObjectStore is the storage backend for uploaded assets. Keys are flat
// filenames under a single upload area.
type ObjectStore interface {
	// Upload writes an object, replacing any existing object with the key
	Upload(ctx context.Context, key string, reader io.Reader) error

	// Download opens an object for reading
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether an object is present
	Exists(ctx context.Context, key string) (bool, error)

	// Copy duplicates an object under a new key, leaving the source in place
	Copy(ctx context.Context, srcKey, dstKey string) error

	// List returns the keys of every stored object
	List(ctx context.Context) ([]string, error)

	// Delete removes an object
	Delete(ctx context.Context, key string) error
}

// AssetManager owns the upload lifecycle: naming new uploads, retitling
// assets once their owning post is saved, and reclaiming orphans.
type AssetManager interface {
	// StoreUpload persists raw image bytes and returns the public relative path
	StoreUpload(ctx context.Context, data []byte, mimeType, suggestedName string) (string, error)

	// Finalize rewrites a post's upload references to title-derived names.
	// Per-reference failures come back as warnings, never as an error.
	Finalize(ctx context.Context, post Post) (Post, []string)

	// Cleanup deletes stored uploads referenced by no post in the collection
	Cleanup(ctx context.Context, posts []Post) []string
}
