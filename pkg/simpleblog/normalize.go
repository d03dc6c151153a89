package simpleblog

import "strings"

// NormalizePost trims and deduplicates an incoming payload into the shape
// the store persists. Images keep insertion order with duplicates dropped;
// tags deduplicate case-insensitively, keeping the first-seen casing. When
// the primary image is unset it is backfilled from the first image.
func NormalizePost(raw RawPost) Post {
	post := Post{
		Title:       strings.TrimSpace(raw.Title),
		Content:     strings.TrimSpace(raw.Content),
		ContentHTML: strings.TrimSpace(raw.ContentHTML),
		Image:       strings.TrimSpace(raw.Image),
		Images:      dedupeImages(raw.Images),
		Tags:        dedupeTags(raw.Tags),
	}

	if post.Image == "" && len(post.Images) > 0 {
		post.Image = post.Images[0]
	}

	return post
}

func dedupeImages(images []string) []string {
	out := make([]string, 0, len(images))
	seen := make(map[string]struct{}, len(images))
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img == "" {
			continue
		}
		if _, ok := seen[img]; ok {
			continue
		}
		seen[img] = struct{}{}
		out = append(out, img)
	}
	return out
}

func dedupeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}
