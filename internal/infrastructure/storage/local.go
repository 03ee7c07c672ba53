package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/service"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

// URLPrefix is where LocalStager files are served.
const URLPrefix = "/uploads/"

// LocalStager keeps uploads in a directory on disk.
type LocalStager struct {
	Root string
}

func NewLocalStager(root string) (*LocalStager, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", root)
	}
	return &LocalStager{Root: root}, nil
}

func (s *LocalStager) Validate(filename string) error {
	_, err := sanitize(filename)
	return err
}

// Stage writes r to Root under the sanitized name and returns /uploads/<name>.
// An existing file with the same name is replaced.
func (s *LocalStager) Stage(_ context.Context, filename string, r io.Reader) (string, error) {
	name, err := sanitize(filename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(filepath.Join(s.Root, name))
	if err != nil {
		return "", apperr.IO("failed to store file", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", apperr.IO("failed to store file", err)
	}
	if err := f.Close(); err != nil {
		return "", apperr.IO("failed to store file", err)
	}
	return URLPrefix + name, nil
}

// Path resolves a served file name to its location under Root. Names that do
// not survive sanitizing unchanged are rejected so lookups cannot escape Root.
func (s *LocalStager) Path(name string) (string, bool) {
	if name == "" || helpers.SecureFilename(name) != name {
		return "", false
	}
	p := filepath.Join(s.Root, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}

var _ service.FileStager = (*LocalStager)(nil)
