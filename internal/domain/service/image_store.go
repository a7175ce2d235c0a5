package service

import (
	"context"
	"io"
)

// ImageStore keeps uploaded business images.
type ImageStore interface {
	// Put stores the image under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes key. A missing key is not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL returns the storage key of a URL issued by Put, or false for foreign URLs.
	KeyFromURL(url string) (string, bool)
}
