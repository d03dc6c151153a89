package simpleblog

// Request/Result DTOs

// RawPost is an incoming post payload before normalization. It mirrors the
// admin editor's JSON body; every field is optional at this stage.
type RawPost struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	ContentHTML string   `json:"contentHtml"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

// SavePostRequest contains parameters for creating or updating a post.
// A nil or out-of-range Index prepends a new post; an in-range Index
// replaces the post at that position.
type SavePostRequest struct {
	Post  RawPost
	Index *int
}

// DeletePostRequest contains parameters for deleting a post by position.
type DeletePostRequest struct {
	Index *int
}

// UploadImageRequest contains an image upload as a base64 data URL plus the
// client-side filename the stored name is derived from.
type UploadImageRequest struct {
	DataURL  string
	Filename string
}

// SaveResult is the outcome of a successful save or delete: the full updated
// collection, plus warnings from best-effort sub-steps (asset renames,
// orphan deletions) that failed without aborting the operation.
type SaveResult struct {
	Posts    []Post
	Warnings []string
}
