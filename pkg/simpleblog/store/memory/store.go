package memory

import (
	"context"
	"sync"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// Store is an in-memory implementation of the simpleblog.PostStore
// interface, intended for tests and development.
type Store struct {
	mu    sync.RWMutex
	posts []simpleblog.Post
}

// New creates a new in-memory post store
func New() *Store {
	return &Store{posts: []simpleblog.Post{}}
}

// Load returns a deep copy of the collection snapshot
func (s *Store) Load(ctx context.Context) ([]simpleblog.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return simpleblog.ClonePosts(s.posts), nil
}

// Save replaces the collection snapshot
func (s *Store) Save(ctx context.Context, posts []simpleblog.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = simpleblog.ClonePosts(posts)
	return nil
}
