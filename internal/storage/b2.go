package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"
)

// B2Bucket stores objects in a Backblaze B2 bucket.
type B2Bucket struct {
	bucket *b2.Bucket
}

func NewB2Client(ctx context.Context, accountID, appKey string) (*b2.Client, error) {
	client, err := b2.NewClient(ctx, accountID, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create b2 client: %w", err)
	}
	return client, nil
}

func NewB2Bucket(ctx context.Context, client *b2.Client, name string) (*B2Bucket, error) {
	bucket, err := client.Bucket(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket %s: %w", name, err)
	}
	return &B2Bucket{bucket: bucket}, nil
}

func (s *B2Bucket) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return obj.URL(), nil
}
