//go:build unit

package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ifuut-api/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, in)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{S3Bucket: "ifuut-media", S3Region: "sa-east-1", S3Prefix: "media"}

	t.Run("objects live under the prefix", func(t *testing.T) {
		client := &fakeS3{}
		s := NewS3Storage(client, cfg)

		require.NoError(t, s.Save(ctx, "comprovantes/2026/10/a.png", "image/png", strings.NewReader("x"), 1))
		require.NoError(t, s.Delete(ctx, "comprovantes/2026/10/a.png"))

		require.Len(t, client.puts, 1)
		assert.Equal(t, "ifuut-media", aws.ToString(client.puts[0].Bucket))
		assert.Equal(t, "media/comprovantes/2026/10/a.png", aws.ToString(client.puts[0].Key))
		assert.Equal(t, "image/png", aws.ToString(client.puts[0].ContentType))
		assert.Equal(t, int64(1), aws.ToInt64(client.puts[0].ContentLength))
		require.Len(t, client.deletes, 1)
		assert.Equal(t, "media/comprovantes/2026/10/a.png", aws.ToString(client.deletes[0].Key))
	})

	t.Run("default public url is the bucket endpoint", func(t *testing.T) {
		s := NewS3Storage(&fakeS3{}, cfg)
		assert.Equal(t, "https://ifuut-media.s3.sa-east-1.amazonaws.com/media/owner_requests/x.jpg", s.URL("owner_requests/x.jpg"))
	})

	t.Run("custom public url", func(t *testing.T) {
		c := cfg
		c.S3PublicURL = "https://cdn.ifuut.com.br/"
		c.S3Prefix = ""
		assert.Equal(t, "https://cdn.ifuut.com.br/owner_requests/x.jpg", NewS3Storage(&fakeS3{}, c).URL("owner_requests/x.jpg"))
	})

	t.Run("client errors are wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		err := NewS3Storage(&fakeS3{err: boom}, cfg).Save(ctx, "k.png", "image/png", strings.NewReader("x"), 0)
		assert.ErrorIs(t, err, boom)
	})
}
