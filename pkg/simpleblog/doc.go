// Package simpleblog provides the persistence core of a small self-hosted
// blog: a post collection stored as a single human-editable JSON document,
// and an upload-asset lifecycle tied to the posts that reference the assets.
//
// It exposes a single Service interface that orchestrates payload
// normalization, validation, asset-name finalization, whole-collection
// read-modify-write persistence, and orphaned-upload cleanup. Implementations
// of post stores (e.g., JSON document, memory) and upload object stores
// (e.g., filesystem, memory, S3) are provided under subpackages.
//
// Collection Discipline
//
// The post collection is owned as one unit: every save or delete loads the
// full collection, merges one record, and rewrites the full snapshot. The
// service serializes these mutations behind a single writer, so concurrent
// requests cannot interleave a lost update. Best-effort sub-steps (asset
// rename, orphan deletion) report warnings on the result instead of failing
// the operation.
package simpleblog
