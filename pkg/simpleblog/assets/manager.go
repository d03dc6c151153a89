// Package assets owns the upload-file lifecycle: naming fresh uploads,
// retitling assets to slug-derived names once their owning post is saved,
// and garbage-collecting uploads no post references anymore.
package assets

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/tendant/simple-blog/pkg/simpleblog"
)

// DefaultPublicPrefix is the relative path the page shell loads uploads
// from; stored keys are filenames under this prefix.
const DefaultPublicPrefix = "assets/uploads"

// maxNameAttempts bounds collision-suffix probing during finalization.
const maxNameAttempts = 50

// extByMimeType is the upload allow-list. Anything absent here is rejected.
var extByMimeType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Manager implements simpleblog.AssetManager over an ObjectStore.
type Manager struct {
	store  simpleblog.ObjectStore
	prefix string

	// stampMu guards lastStamp so two uploads in the same millisecond still
	// get distinct names.
	stampMu   sync.Mutex
	lastStamp int64

	refPattern *regexp.Regexp
}

// Option represents a functional option for configuring the manager
type Option func(*Manager)

// WithPublicPrefix overrides the public relative path prefix for uploads
func WithPublicPrefix(prefix string) Option {
	return func(m *Manager) {
		m.prefix = strings.Trim(prefix, "/")
	}
}

// NewManager creates an asset manager backed by the given object store
func NewManager(store simpleblog.ObjectStore, options ...Option) *Manager {
	m := &Manager{
		store:  store,
		prefix: DefaultPublicPrefix,
	}

	for _, option := range options {
		option(m)
	}

	// Matches upload paths embedded anywhere in free text, e.g. the src of
	// an inline <img> inside rich content.
	m.refPattern = regexp.MustCompile(regexp.QuoteMeta(m.prefix) + `/([A-Za-z0-9._-]+)`)

	return m
}

// PublicPrefix returns the relative path prefix stored names live under
func (m *Manager) PublicPrefix() string {
	return m.prefix
}

// StoreUpload persists raw image bytes under a collision-free name derived
// from a monotonic timestamp and the sanitized client filename, and returns
// the public relative path.
func (m *Manager) StoreUpload(ctx context.Context, data []byte, mimeType, suggestedName string) (string, error) {
	ext, ok := extByMimeType[mimeType]
	if !ok {
		return "", fmt.Errorf("%w: %s", simpleblog.ErrUnsupportedImage, mimeType)
	}

	name := fmt.Sprintf("%d-%s%s", m.nextStamp(), sanitizeBaseName(suggestedName), ext)
	if err := m.store.Upload(ctx, name, bytes.NewReader(data)); err != nil {
		return "", &simpleblog.AssetError{Key: name, Op: "upload", Err: err}
	}

	return m.prefix + "/" + name, nil
}

// nextStamp returns a strictly increasing Unix-millis value.
func (m *Manager) nextStamp() int64 {
	m.stampMu.Lock()
	defer m.stampMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= m.lastStamp {
		now = m.lastStamp + 1
	}
	m.lastStamp = now
	return now
}

// Finalize rewrites every upload reference of a post to a stable
// `<slug(title)>-image-<position><ext>` name, copying the stored file so the
// original survives until cleanup. A reference that cannot be finalized is
// left unchanged and reported as a warning; a single broken reference never
// aborts the save.
func (m *Manager) Finalize(ctx context.Context, post simpleblog.Post) (simpleblog.Post, []string) {
	var warnings []string

	slug := Slug(post.Title)
	out := post.Clone()
	rewrote := false

	for i, ref := range out.Images {
		key, ok := m.uploadKey(ref)
		if !ok {
			continue
		}

		desired := fmt.Sprintf("%s-image-%d%s", slug, i+1, path.Ext(key))
		if key == desired {
			continue
		}

		target, err := m.freeName(ctx, desired)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("finalize %s: %v", key, err))
			continue
		}

		if err := m.store.Copy(ctx, key, target); err != nil {
			warnings = append(warnings, fmt.Sprintf("finalize %s: %v", key, err))
			continue
		}

		out.Images[i] = m.prefix + "/" + target
		rewrote = true
	}

	if rewrote && len(out.Images) > 0 {
		out.Image = out.Images[0]
	}

	return out, warnings
}

// freeName probes for the first unoccupied variant of the desired name,
// suffixing -2, -3, ... before the extension.
func (m *Manager) freeName(ctx context.Context, desired string) (string, error) {
	ext := path.Ext(desired)
	base := strings.TrimSuffix(desired, ext)

	for attempt := 1; attempt <= maxNameAttempts; attempt++ {
		candidate := desired
		if attempt > 1 {
			candidate = fmt.Sprintf("%s-%d%s", base, attempt, ext)
		}

		exists, err := m.store.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("no free name for %s after %d attempts", desired, maxNameAttempts)
}

// Referenced scans every post's image fields and body text and returns the
// set of upload filenames still in use.
func (m *Manager) Referenced(posts []simpleblog.Post) map[string]struct{} {
	refs := make(map[string]struct{})

	for _, post := range posts {
		if key, ok := m.uploadKey(post.Image); ok {
			refs[key] = struct{}{}
		}
		for _, img := range post.Images {
			if key, ok := m.uploadKey(img); ok {
				refs[key] = struct{}{}
			}
		}
		for _, text := range []string{post.Content, post.ContentHTML} {
			for _, match := range m.refPattern.FindAllStringSubmatch(text, -1) {
				refs[match[1]] = struct{}{}
			}
		}
	}

	return refs
}

// Cleanup deletes every stored upload that no post references. Deletions
// are independent files and run concurrently; individual failures are
// collected as warnings and never abort the pass.
func (m *Manager) Cleanup(ctx context.Context, posts []simpleblog.Post) []string {
	keys, err := m.store.List(ctx)
	if err != nil {
		return []string{fmt.Sprintf("cleanup: list uploads: %v", err)}
	}

	refs := m.Referenced(posts)

	var (
		wg         sync.WaitGroup
		warningsMu sync.Mutex
		warnings   []string
	)

	for _, key := range keys {
		if _, ok := refs[key]; ok {
			continue
		}

		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if err := m.store.Delete(ctx, key); err != nil {
				warningsMu.Lock()
				warnings = append(warnings, fmt.Sprintf("cleanup %s: %v", key, err))
				warningsMu.Unlock()
			}
		}(key)
	}

	wg.Wait()
	return warnings
}

// uploadKey extracts the stored filename from a public upload path. Paths
// outside the upload prefix (external images, site assets) return false.
func (m *Manager) uploadKey(ref string) (string, bool) {
	rest, ok := strings.CutPrefix(ref, m.prefix+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
