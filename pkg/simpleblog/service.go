package simpleblog

import "context"

// Service defines the main interface for the simple-blog library
type Service interface {
	// ListPosts returns the current persisted collection, newest first
	ListPosts(ctx context.Context) ([]Post, error)

	// SavePost normalizes and validates a payload, finalizes its asset
	// names, merges it into the collection (prepend or replace-at-index),
	// persists the snapshot, and reclaims orphaned uploads
	SavePost(ctx context.Context, req SavePostRequest) (*SaveResult, error)

	// DeletePost removes the post at the given index, persists the
	// snapshot, and reclaims orphaned uploads
	DeletePost(ctx context.Context, req DeletePostRequest) (*SaveResult, error)

	// UploadImage decodes an image data URL and stores it under a fresh
	// collision-free upload name, returning the public relative path
	UploadImage(ctx context.Context, req UploadImageRequest) (string, error)
}
