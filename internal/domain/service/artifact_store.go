package service

import (
	"context"
)

// ArtifactStore keeps generated binary artifacts such as checkpoint QR images.
type ArtifactStore interface {
	// Get returns the stored bytes, or found=false when nothing is stored under key.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Put stores data under key, replacing any previous value.
	Put(ctx context.Context, key, contentType string, data []byte) error

	// Close releases the underlying bucket.
	Close() error
}
