package service

import (
	"context"
	"io"
)

// FileStager validates and persists uploaded images.
type FileStager interface {
	// Validate checks the upload name without touching storage.
	Validate(filename string) error

	// Stage writes the upload and returns the reference to persist on the user.
	// Uploads whose sanitized names collide overwrite each other.
	Stage(ctx context.Context, filename string, r io.Reader) (string, error)
}
