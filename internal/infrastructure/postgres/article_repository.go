package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/entity"
	"github.com/saffco/skincare-backend/internal/domain/repository"
)

type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

const articleColumns = `id, title, content, image_path, created_at, updated_at`

func scanArticle(row pgx.Row) (*entity.Article, error) {
	a := &entity.Article{}
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.ImagePath, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ArticleRepository) List(ctx context.Context) ([]entity.Article, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list articles")
	}
	defer rows.Close()

	out := []entity.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan article")
		}
		out = append(out, *a)
	}
	return out, errors.Wrap(rows.Err(), "list articles")
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "select article")
	}
	return a, nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, content, image_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, a.Title, a.Content, a.ImagePath).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return errors.Wrap(err, "insert article")
}

func (r *ArticleRepository) Update(ctx context.Context, a *entity.Article) error {
	a.UpdatedAt = time.Now()
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET title = $1, content = $2, image_path = $3, updated_at = $4
		WHERE id = $5
		RETURNING created_at
	`, a.Title, a.Content, a.ImagePath, a.UpdatedAt, a.ID).Scan(&a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return errors.Wrap(err, "update article")
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete article")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)
