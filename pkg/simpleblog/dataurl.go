package simpleblog

import (
	"encoding/base64"
	"fmt"
	"regexp"
)

// dataURLPattern matches a base64 image data URI and captures the MIME type
// and payload.
var dataURLPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,(.+)$`)

// DecodeImageDataURL parses a "data:image/...;base64," URI into raw bytes
// and the declared MIME type. The MIME allow-list is enforced later by the
// asset manager; this only rejects URIs that are not base64 images at all.
func DecodeImageDataURL(dataURL string) ([]byte, string, error) {
	match := dataURLPattern.FindStringSubmatch(dataURL)
	if match == nil {
		return nil, "", fmt.Errorf("%w: not an image data url", ErrUnsupportedImage)
	}

	data, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return data, match[1], nil
}
