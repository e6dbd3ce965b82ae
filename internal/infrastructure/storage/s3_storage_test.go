package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeS3 struct {
	objects       map[string][]byte
	contentTypes  map[string]string
	bucketExists  bool
	createdBucket string
	putErr        error
	headBucketErr error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.objects[key] = data
	f.contentTypes[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headBucketErr != nil {
		return nil, f.headBucketErr
	}
	if !f.bucketExists {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.createdBucket = aws.ToString(in.Bucket)
	f.bucketExists = true
	return &s3.CreateBucketOutput{}, nil
}

func validStorageConfig() *config.StorageConfig {
	return &config.StorageConfig{
		Bucket:       "product-images",
		AccessKey:    "test-key",
		SecretKey:    "test-secret",
		Endpoint:     "http://localhost:9000",
		UsePathStyle: true,
	}
}

func TestNewS3ImageStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ImageStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.Bucket = ""
		_, err := NewS3ImageStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.AccessKey = ""
		_, err := NewS3ImageStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.SecretKey = ""
		_, err := NewS3ImageStorage(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("valid config creates storage", func(t *testing.T) {
		storage, err := NewS3ImageStorage(validStorageConfig(), WithLogger(zaptest.NewLogger(t)))
		require.NoError(t, err)
		assert.Equal(t, "product-images", storage.Bucket())
	})
}

func TestS3ImageStorage_PublicURL(t *testing.T) {
	t.Run("path style from endpoint", func(t *testing.T) {
		storage, err := NewS3ImageStorage(validStorageConfig())
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/product-images/products/a.png", storage.PublicURL("products/a.png"))
	})

	t.Run("public base url wins", func(t *testing.T) {
		cfg := validStorageConfig()
		cfg.PublicBaseURL = "https://cdn.example.com/"
		storage, err := NewS3ImageStorage(cfg)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/products/a.png", storage.PublicURL("/products/a.png"))
	})
}

func TestS3ImageStorage_Upload(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	storage, err := NewS3ImageStorage(validStorageConfig(), WithClient(fake))
	require.NoError(t, err)

	url, err := storage.Upload(ctx, "products/p1/img.png", "image/png", strings.NewReader("png"), 3)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/product-images/products/p1/img.png", url)
	assert.Equal(t, []byte("png"), fake.objects["products/p1/img.png"])
	assert.Equal(t, "image/png", fake.contentTypes["products/p1/img.png"])

	exists, err := storage.ObjectExists(ctx, "products/p1/img.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, storage.Delete(ctx, "products/p1/img.png"))
	exists, err = storage.ObjectExists(ctx, "products/p1/img.png")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = storage.Upload(ctx, "", "image/png", strings.NewReader("png"), 3)
	assert.Error(t, err)

	fake.putErr = errors.New("access denied")
	_, err = storage.Upload(ctx, "products/p1/other.png", "image/png", strings.NewReader("png"), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload object")
}

func TestS3ImageStorage_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing bucket", func(t *testing.T) {
		fake := newFakeS3()
		storage, err := NewS3ImageStorage(validStorageConfig(), WithClient(fake))
		require.NoError(t, err)

		require.NoError(t, storage.EnsureBucket(ctx))
		assert.Equal(t, "product-images", fake.createdBucket)
	})

	t.Run("existing bucket is left alone", func(t *testing.T) {
		fake := newFakeS3()
		fake.bucketExists = true
		storage, err := NewS3ImageStorage(validStorageConfig(), WithClient(fake))
		require.NoError(t, err)

		require.NoError(t, storage.EnsureBucket(ctx))
		assert.Empty(t, fake.createdBucket)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		fake := newFakeS3()
		fake.headBucketErr = errors.New("forbidden")
		storage, err := NewS3ImageStorage(validStorageConfig(), WithClient(fake))
		require.NoError(t, err)

		assert.Error(t, storage.EnsureBucket(ctx))
	})
}
