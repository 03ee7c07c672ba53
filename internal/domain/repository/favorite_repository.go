package repository

import (
	"context"

	"github.com/saffco/skincare-backend/internal/domain/entity"
)

type FavoriteRepository interface {
	ListByUsername(ctx context.Context, username string) ([]entity.Favorite, error)
	Create(ctx context.Context, f *entity.Favorite) error
	Delete(ctx context.Context, username string, id int64) error
}
