package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"directorio/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublicURLs(t *testing.T) {
	urls := publicURLs{base: "https://media.example.com"}

	assert.Equal(t, "https://media.example.com/businesses/abc.png", urls.URL("businesses/abc.png"))

	tests := []struct {
		url    string
		key    string
		wantOK bool
	}{
		{url: "https://media.example.com/businesses/abc.png", key: "businesses/abc.png", wantOK: true},
		{url: "https://otro.example.com/businesses/abc.png"},
		{url: "https://media.example.com/"},
		{url: "/images/restaurantes.png"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			key, ok := urls.KeyFromURL(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestBlobStore_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	lc := fxtest.NewLifecycle(t)
	bucket := memblob.OpenBucket(nil)
	store := newBlobStore(lc, bucket, publicURLs{base: DefaultMediaPath})

	url, err := store.Put(ctx, "businesses/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/media/businesses/abc.png", url)

	attrs, err := bucket.Attributes(ctx, "businesses/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	key, ok := store.KeyFromURL(url)
	require.True(t, ok)
	require.NoError(t, store.Delete(ctx, key))

	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Delete(ctx, key), "deleting a missing key is not an error")

	lc.RequireStart().RequireStop()
}

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    string
	deleted *s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)

	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params

	return &s3.DeleteObjectOutput{}, f.err
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	client := &fakeS3{}
	store := &s3Store{publicURLs: publicURLs{base: "https://media.example.com"}, client: client, bucket: "directorio"}

	url, err := store.Put(ctx, "businesses/abc.webp", "image/webp", strings.NewReader("webp"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/businesses/abc.webp", url)
	assert.Equal(t, "directorio", aws.ToString(client.put.Bucket))
	assert.Equal(t, "image/webp", aws.ToString(client.put.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(client.put.ContentLength))
	assert.Equal(t, "webp", client.body)

	require.NoError(t, store.Delete(ctx, "businesses/abc.webp"))
	assert.Equal(t, "businesses/abc.webp", aws.ToString(client.deleted.Key))

	client.err = errors.New("access denied")
	_, err = store.Put(ctx, "k", "image/png", strings.NewReader("x"))
	require.Error(t, err)
}

func TestNewImageStore(t *testing.T) {
	tests := []struct {
		name    string
		storage *config.StorageConfig
		wantErr bool
	}{
		{name: "memory", storage: &config.StorageConfig{Provider: "memory"}},
		{name: "file", storage: &config.StorageConfig{Provider: "file", Dir: t.TempDir()}},
		{name: "file without dir", storage: &config.StorageConfig{Provider: "file"}, wantErr: true},
		{name: "s3 without bucket", storage: &config.StorageConfig{Provider: "s3", PublicBaseURL: "https://m"}, wantErr: true},
		{name: "unknown", storage: &config.StorageConfig{Provider: "ftp"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewImageStore(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Ctx:       context.Background(),
				Config:    &config.Config{Storage: tt.storage},
				Logger:    discardLogger(),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
