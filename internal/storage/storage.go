// Package storage uploads question and answer attachments to blob storage.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/utils"
)

// Bucket stores one object and returns its public URL.
type Bucket interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
}

// File is one attachment as received from the client.
type File struct {
	Name    string
	Content io.Reader
}

var now = time.Now

// ObjectName builds a collision resistant object key of the form
// <unix millis>_[<prefix>_]<random>.<ext>.
func ObjectName(prefix, original string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d_", now().UnixMilli())
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('_')
	}
	b.WriteString(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	if ext := utils.FileExt(original); ext != "" {
		b.WriteByte('.')
		b.WriteString(ext)
	}
	return b.String()
}

// UploadAll uploads files one after another, each bounded by timeout. It
// stops at the first failure and returns an *apperrors.UploadError naming the
// failed file and the URLs stored before it.
func UploadAll(ctx context.Context, bucket Bucket, prefix string, files []File, timeout time.Duration) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := uploadOne(ctx, bucket, ObjectName(prefix, f.Name), f.Content, timeout)
		if err != nil {
			logger.Log.Error("file upload failed",
				zap.String("file", f.Name),
				zap.Int("uploaded", len(urls)),
				zap.Error(err))
			return urls, &apperrors.UploadError{Failed: f.Name, Uploaded: urls, Err: err}
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func uploadOne(ctx context.Context, bucket Bucket, key string, r io.Reader, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return bucket.Upload(ctx, key, r)
}

// Unavailable is used when no blob storage is configured. Every upload fails.
type Unavailable struct{}

func (Unavailable) Upload(context.Context, string, io.Reader) (string, error) {
	return "", apperrors.ErrStorageUnavailable
}
