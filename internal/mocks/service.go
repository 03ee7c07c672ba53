package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

type PasswordHasher struct{ mock.Mock }

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type FileStager struct{ mock.Mock }

func (m *FileStager) Validate(filename string) error {
	return m.Called(filename).Error(0)
}

func (m *FileStager) Stage(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

type Notifier struct{ mock.Mock }

func (m *Notifier) Notify(ctx context.Context, n service.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type SearchIndex struct{ mock.Mock }

func (m *SearchIndex) Index(ctx context.Context, index, id string, doc any) error {
	return m.Called(ctx, index, id, doc).Error(0)
}

func (m *SearchIndex) Delete(ctx context.Context, index, id string) error {
	return m.Called(ctx, index, id).Error(0)
}

func (m *SearchIndex) Search(ctx context.Context, index, query string, fields []string, size int) ([]map[string]any, error) {
	args := m.Called(ctx, index, query, fields, size)
	out, _ := args.Get(0).([]map[string]any)
	return out, args.Error(1)
}

type BlobSource struct{ mock.Mock }

func (m *BlobSource) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

var (
	_ service.PasswordHasher = (*PasswordHasher)(nil)
	_ service.FileStager     = (*FileStager)(nil)
	_ service.Notifier       = (*Notifier)(nil)
	_ service.SearchIndex    = (*SearchIndex)(nil)
	_ service.BlobSource     = (*BlobSource)(nil)
)
