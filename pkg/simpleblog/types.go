package simpleblog

// Post is one blog entry. Field names follow the JSON document on disk,
// which is also the wire shape served to the page.
type Post struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	ContentHTML string   `json:"contentHtml"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

// Validate checks the persistence invariant: a post must carry a title and
// at least one of the two body fields. Inputs are expected to be normalized
// (trimmed) already.
func (p Post) Validate() error {
	if p.Title == "" || (p.Content == "" && p.ContentHTML == "") {
		return ErrInvalidPost
	}
	return nil
}

// Clone returns a deep copy so callers can hand posts across goroutines
// without sharing slice backing arrays.
func (p Post) Clone() Post {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// ClonePosts deep-copies a collection snapshot.
func ClonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = p.Clone()
	}
	return out
}
