package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// CloudStorage implements ObjectStore over a Google Cloud Storage bucket.
type CloudStorage struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewCloudStorage(client *storage.Client, bucketName string) *CloudStorage {
	return &CloudStorage{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}
}

var _ ObjectStore = (*CloudStorage)(nil)

func (s *CloudStorage) Upload(ctx context.Context, path string, r io.Reader, contentType string) (string, error) {
	w := s.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, path), nil
}

func (s *CloudStorage) List(ctx context.Context, prefix string) ([]string, error) {
	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var paths []string
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			return paths, nil
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, attrs.Name)
	}
}

func (s *CloudStorage) Delete(ctx context.Context, path string) error {
	err := s.bucket.Object(path).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}
