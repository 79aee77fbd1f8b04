package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("image storage is not configured")

// Uploader stores an object under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Name() string
}
