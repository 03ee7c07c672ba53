// Package storage holds the avatar upload backends.
package storage

import (
	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

// ErrInvalidFileType is returned for uploads outside the image allowlist.
var ErrInvalidFileType = apperr.Validation("Invalid file type")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

func allowedFile(name string) bool {
	_, ok := allowedExtensions[helpers.FileExt(name)]
	return ok
}

// sanitize validates the raw name and returns the on-disk name. The allowlist
// is checked again after sanitizing since folding can strip the extension.
func sanitize(filename string) (string, error) {
	if !allowedFile(filename) {
		return "", ErrInvalidFileType
	}
	name := helpers.SecureFilename(filename)
	if name == "" || !allowedFile(name) {
		return "", ErrInvalidFileType
	}
	return name, nil
}

func contentType(name string) string {
	if helpers.FileExt(name) == "png" {
		return "image/png"
	}
	return "image/jpeg"
}
