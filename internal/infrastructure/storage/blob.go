package storage

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

// FileBlobSource reads the recommender blob from a JSON file on disk.
type FileBlobSource struct {
	Path string
}

func NewFileBlobSource(path string) *FileBlobSource {
	return &FileBlobSource{Path: path}
}

func (s *FileBlobSource) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, service.ErrBlobNotFound
		}
		return nil, errors.Wrapf(err, "read %s", s.Path)
	}
	return b, nil
}

var _ service.BlobSource = (*FileBlobSource)(nil)
