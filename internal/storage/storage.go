package storage

import (
	"context"
	"io"
	"strings"
)

// Uploader is the media host contract. Upload returns the public URL the
// document stores; Delete removes a previously uploaded object.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (publicURL string, err error)
	Delete(ctx context.Context, objectName string) error
}

const publicURLPrefix = "https://storage.googleapis.com/"

// ObjectFromURL recovers the full object name from a stored public URL.
// Documents keep only the URL, so deletion has to work backwards from it;
// parsing the whole path after the bucket (rather than just the last
// segment) keeps folder-qualified names like "users/images/<uuid>.png"
// intact. Returns false for URLs from another host.
func ObjectFromURL(publicURL string) (string, bool) {
	rest, ok := strings.CutPrefix(publicURL, publicURLPrefix)
	if !ok {
		return "", false
	}
	// rest is "<bucket>/<object...>"
	_, object, ok := strings.Cut(rest, "/")
	if !ok || object == "" {
		return "", false
	}
	return object, true
}
