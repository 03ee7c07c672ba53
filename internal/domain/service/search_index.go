package service

import "context"

// SearchIndex mirrors catalog documents into a full-text index.
type SearchIndex interface {
	Index(ctx context.Context, index, id string, doc any) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index, query string, fields []string, size int) ([]map[string]any, error)
}
