package service

import (
	"context"
	"io"

	"hokhau/internal/domain/entity"
)

// AttachmentStore persists uploaded request attachments. The registry only
// stores and serves the bytes; file content is never inspected.
type AttachmentStore interface {
	// Save writes the content under a generated key and returns the
	// descriptor the request payload embeds.
	Save(ctx context.Context, originalName, mimeType string, content io.Reader) (*entity.Attachment, error)

	// Open returns a reader for a previously saved attachment.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
