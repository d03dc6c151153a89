package simpleblog

import (
	"context"
	"fmt"
	"sync"
)

// service implements the Service interface
type service struct {
	// mu serializes whole-collection read-modify-write cycles. The backing
	// document has no transaction support, so the single-writer discipline
	// lives here.
	mu     sync.RWMutex
	store  PostStore
	assets AssetManager
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithPostStore sets the post store for the service
func WithPostStore(store PostStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithAssetManager sets the asset manager for the service
func WithAssetManager(assets AssetManager) Option {
	return func(s *service) {
		s.assets = assets
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("post store is required")
	}
	if s.assets == nil {
		return nil, fmt.Errorf("asset manager is required")
	}

	return s, nil
}

func (s *service) ListPosts(ctx context.Context) ([]Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.store.Load(ctx)
}

func (s *service) SavePost(ctx context.Context, req SavePostRequest) (*SaveResult, error) {
	post := NormalizePost(req.Post)
	if err := post.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Finalization copies upload files and must not run for a payload
	// that failed validation.
	post, warnings := s.assets.Finalize(ctx, post)

	posts, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if req.Index != nil && *req.Index >= 0 && *req.Index < len(posts) {
		posts[*req.Index] = post
	} else {
		posts = append([]Post{post}, posts...)
	}

	if err := s.store.Save(ctx, posts); err != nil {
		return nil, err
	}

	// Cleanup runs against the snapshot just persisted, never a stale read.
	// Its failures do not roll back the committed save.
	warnings = append(warnings, s.assets.Cleanup(ctx, posts)...)

	return &SaveResult{Posts: posts, Warnings: warnings}, nil
}

func (s *service) DeletePost(ctx context.Context, req DeletePostRequest) (*SaveResult, error) {
	if req.Index == nil {
		return nil, ErrInvalidIndex
	}
	index := *req.Index

	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(posts) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	posts = append(posts[:index], posts[index+1:]...)

	if err := s.store.Save(ctx, posts); err != nil {
		return nil, err
	}

	warnings := s.assets.Cleanup(ctx, posts)

	return &SaveResult{Posts: posts, Warnings: warnings}, nil
}

func (s *service) UploadImage(ctx context.Context, req UploadImageRequest) (string, error) {
	data, mimeType, err := DecodeImageDataURL(req.DataURL)
	if err != nil {
		return "", err
	}

	return s.assets.StoreUpload(ctx, data, mimeType, req.Filename)
}
