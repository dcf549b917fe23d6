// Package storage persists uploaded attachments in a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"os"
	"path"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"hokhau/config"
	"hokhau/internal/domain/entity"
	"hokhau/internal/domain/service"
	"hokhau/internal/errors"
)

const defaultAttachmentDir = "./data/attachments"

// blobStore implements service.AttachmentStore on top of a blob.Bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the attachment bucket backed by the configured directory.
func New(params Params) (service.AttachmentStore, error) {
	dir := defaultAttachmentDir
	if params.Config.Storage != nil && params.Config.Storage.AttachmentDir != "" {
		dir = params.Config.Storage.AttachmentDir
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create attachment directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket}, nil
}

// NewWithBucket wraps an already opened bucket. Used by tests with memblob.
func NewWithBucket(bucket *blob.Bucket) service.AttachmentStore {
	return &blobStore{bucket: bucket}
}

// Save writes the content under a generated key and returns the descriptor
// the request payload embeds.
func (s *blobStore) Save(ctx context.Context, originalName, mimeType string, content io.Reader) (*entity.Attachment, error) {
	key := uuid.NewString() + path.Ext(originalName)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment writer")
	}

	size, err := io.Copy(writer, content)
	if err != nil {
		_ = writer.Close()

		return nil, errors.Wrap(err, "failed to write attachment")
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize attachment")
	}

	return &entity.Attachment{
		Name:         key,
		OriginalName: originalName,
		MimeType:     mimeType,
		Size:         size,
		URL:          "/api/attachments/" + key,
	}, nil
}

// Open returns a reader for a previously saved attachment.
func (s *blobStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, name, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment")
	}

	return reader, nil
}
