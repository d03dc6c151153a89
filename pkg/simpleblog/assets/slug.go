package assets

import (
	"regexp"
	"strings"
)

const (
	maxSlugLength     = 60
	maxBaseNameLength = 40
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	unsafeBaseChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)
	trailingExt     = regexp.MustCompile(`\.[^.]+$`)
)

// Slug derives a filename-safe identifier from a post title: lowercase,
// runs of non-alphanumerics collapsed to single hyphens, trimmed and
// length-capped. An empty result falls back to "post".
func Slug(title string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLength {
		s = strings.Trim(s[:maxSlugLength], "-")
	}
	if s == "" {
		return "post"
	}
	return s
}

// sanitizeBaseName strips the extension from a client-supplied filename and
// reduces it to a safe, capped basename for the stored upload name.
func sanitizeBaseName(filename string) string {
	base := trailingExt.ReplaceAllString(filename, "")
	base = unsafeBaseChars.ReplaceAllString(base, "-")
	if len(base) > maxBaseNameLength {
		base = base[:maxBaseNameLength]
	}
	if base == "" {
		return "upload"
	}
	return base
}
