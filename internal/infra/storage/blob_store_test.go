package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_SaveAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewWithBucket(bucket)
	ctx := context.Background()

	content := "giay xac nhan tam tru"
	attachment, err := store.Save(ctx, "giay-xac-nhan.pdf", "application/pdf", strings.NewReader(content))
	require.NoError(t, err)

	assert.NotEmpty(t, attachment.Name)
	assert.True(t, strings.HasSuffix(attachment.Name, ".pdf"))
	assert.Equal(t, "giay-xac-nhan.pdf", attachment.OriginalName)
	assert.Equal(t, "application/pdf", attachment.MimeType)
	assert.Equal(t, int64(len(content)), attachment.Size)
	assert.Equal(t, "/api/attachments/"+attachment.Name, attachment.URL)

	reader, err := store.Open(ctx, attachment.Name)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestBlobStore_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewWithBucket(bucket)

	_, err := store.Open(context.Background(), "khong-ton-tai.pdf")
	assert.Error(t, err)
}
