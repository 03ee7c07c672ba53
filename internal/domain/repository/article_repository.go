package repository

import (
	"context"

	"github.com/saffco/skincare-backend/internal/domain/entity"
)

type ArticleRepository interface {
	List(ctx context.Context) ([]entity.Article, error)
	GetByID(ctx context.Context, id int64) (*entity.Article, error)
	Create(ctx context.Context, a *entity.Article) error
	Update(ctx context.Context, a *entity.Article) error
	Delete(ctx context.Context, id int64) error
}
