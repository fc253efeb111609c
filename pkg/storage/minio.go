package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"meem-backend/pkg/utils"
)

// ObjectUploader is the narrow contract the services depend on.
type ObjectUploader interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
}

// minioAPI enables mocking without a real object storage server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}

func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}

func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader *bytes.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}

var _ ObjectUploader = (*MinioStore)(nil)

// MinioStore uploads binary content to an S3-compatible bucket.
type MinioStore struct {
	api    minioAPI
	bucket string
}

// NewMinioStore connects to the configured endpoint and ensures the bucket exists.
func NewMinioStore(ctx context.Context, config utils.StorageConfig) (*MinioStore, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object storage client: %w", err)
	}

	return newMinioStoreWithAPI(ctx, minioClientWrapper{c: client}, config.Bucket)
}

func newMinioStoreWithAPI(ctx context.Context, api minioAPI, bucket string) (*MinioStore, error) {
	s := &MinioStore{
		api:    api,
		bucket: bucket,
	}

	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket exists: %w", err)
	}

	return s, nil
}

func (s *MinioStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}

	if !exists {
		if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}

	return nil
}

// Put uploads data under the given key.
func (s *MinioStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload object %s: %w", key, err)
	}
	return nil
}
