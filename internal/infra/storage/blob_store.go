// Package storage keeps generated artifacts in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"patrol/config"
	"patrol/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the artifact store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArtifactStore opens the configured bucket and closes it on shutdown.
func NewArtifactStore(params Params) (service.ArtifactStore, error) {
	url := "mem://"
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		url = params.Config.Storage.BucketURL
	}

	store, err := OpenBlobStore(params.Ctx, url)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Artifact bucket opened", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// OpenBlobStore opens a bucket by gocloud URL.
func OpenBlobStore(ctx context.Context, url string) (service.ArtifactStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, true, nil
}

func (s *blobStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
