package simpleblog

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrInvalidPost indicates a payload missing its title or body
	ErrInvalidPost = errors.New("title and content are required")

	// ErrInvalidIndex indicates an out-of-range or missing post index
	ErrInvalidIndex = errors.New("invalid post index")

	// ErrUnsupportedImage indicates an upload payload outside the image allow-list
	ErrUnsupportedImage = errors.New("unsupported image payload")

	// ErrStorageRead indicates the post document could not be read or parsed
	ErrStorageRead = errors.New("post store read failed")

	// ErrStorageWrite indicates the post document could not be written
	ErrStorageWrite = errors.New("post store write failed")
)

// StoreError represents an error raised by a post store backend
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("post store %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// AssetError represents an error raised by the upload object store
type AssetError struct {
	Key string
	Op  string
	Err error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset operation %s failed for %s: %v", e.Op, e.Key, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
