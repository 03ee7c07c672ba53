package storage

import (
	"context"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/service"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

var errGCSNotConfigured = errors.New("gcs not configured")

// GCSStager uploads avatars to a bucket and returns their public URL.
// Objects are keyed by sanitized name only, so equal names overwrite.
type GCSStager struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewGCSStager(client *storage.Client, bucket, prefix string) *GCSStager {
	return &GCSStager{Client: client, Bucket: bucket, Prefix: prefix}
}

func (s *GCSStager) Validate(filename string) error {
	_, err := sanitize(filename)
	return err
}

func (s *GCSStager) Stage(ctx context.Context, filename string, r io.Reader) (string, error) {
	name, err := sanitize(filename)
	if err != nil {
		return "", err
	}
	if s.Client == nil || s.Bucket == "" {
		return "", apperr.IO("failed to store file", errGCSNotConfigured)
	}
	url, err := helpers.UploadObject(ctx, s.Client, s.Bucket, path.Join(s.Prefix, name), contentType(name), r)
	if err != nil {
		return "", apperr.IO("failed to store file", err)
	}
	return url, nil
}

var _ service.FileStager = (*GCSStager)(nil)
