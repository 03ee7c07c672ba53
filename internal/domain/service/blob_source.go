package service

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when the recommender data has not been published yet.
var ErrBlobNotFound = errors.New("blob not found")

// BlobSource loads the raw recommender data blob.
type BlobSource interface {
	Load(ctx context.Context) ([]byte, error)
}
