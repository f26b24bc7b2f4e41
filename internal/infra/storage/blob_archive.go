// Package storage implements blob-backed archive storage for bulk import
// uploads.
package storage

import (
	"context"
	"log/slog"

	"skyelectro/config"
	"skyelectro/internal/domain/lifecycle"
	"skyelectro/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme: file:// for development,
	// gs:// for production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobArchive struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// noopArchive is used when no archive bucket is configured; imports proceed
// without keeping the raw upload.
type noopArchive struct {
	logger *slog.Logger
}

func (a *noopArchive) Store(_ context.Context, key string, _ string, _ []byte) error {
	a.logger.Debug("archive storage disabled, skipping upload", slog.String("key", key))

	return nil
}

func (a *noopArchive) Close() error {
	return nil
}

// Params holds dependencies for ArchiveStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiveStorage opens the configured blob bucket, or returns a no-op
// store when archiving is disabled.
func NewArchiveStorage(params Params) (service.ArchiveStorage, error) {
	cfg := params.Config.BulkImport
	if cfg == nil || cfg.ArchiveBucketURL == "" {
		params.Logger.Info("Import archive bucket not configured, archiving disabled")

		return &noopArchive{logger: params.Logger}, nil
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.ArchiveBucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.ArchiveBucketURL)
	}

	params.Logger.Info("Import archive bucket opened",
		slog.String("bucket_url", cfg.ArchiveBucketURL),
	)

	archive := &blobArchive{bucket: bucket, logger: params.Logger}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return archive.Close()
		},
	})

	return archive, nil
}

// Store writes the raw upload under the given key.
func (a *blobArchive) Store(ctx context.Context, key string, contentType string, data []byte) error {
	err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to write archive object %s", key)
	}

	a.logger.Debug("archived bulk import upload",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return nil
}

// Close releases the underlying bucket.
func (a *blobArchive) Close() error {
	return errors.WithStack(a.bucket.Close())
}
