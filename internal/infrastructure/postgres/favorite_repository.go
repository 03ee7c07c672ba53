package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/entity"
	"github.com/saffco/skincare-backend/internal/domain/repository"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

func (r *FavoriteRepository) ListByUsername(ctx context.Context, username string) ([]entity.Favorite, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, username, article_id, product_name, product_image_url, created_at
		FROM favorites
		WHERE username = $1
		ORDER BY id
	`, username)
	if err != nil {
		return nil, errors.Wrap(err, "list favorites")
	}
	defer rows.Close()

	out := []entity.Favorite{}
	for rows.Next() {
		var f entity.Favorite
		if err := rows.Scan(&f.ID, &f.Username, &f.ArticleID, &f.ProductName, &f.ProductImageURL, &f.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan favorite")
		}
		out = append(out, f)
	}
	return out, errors.Wrap(rows.Err(), "list favorites")
}

func (r *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO favorites (username, article_id, product_name, product_image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, f.Username, f.ArticleID, f.ProductName, f.ProductImageURL).Scan(&f.ID, &f.CreatedAt)
	if isForeignKeyViolation(err) {
		// referenced article does not exist
		return repository.ErrNotFound
	}
	return errors.Wrap(err, "insert favorite")
}

func (r *FavoriteRepository) Delete(ctx context.Context, username string, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM favorites WHERE id = $1 AND username = $2`, id, username)
	if err != nil {
		return errors.Wrap(err, "delete favorite")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.FavoriteRepository = (*FavoriteRepository)(nil)
