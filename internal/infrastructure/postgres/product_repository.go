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

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, product_name, product_image_url, description, price::float8, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	if err := row.Scan(&p.ID, &p.ProductName, &p.ProductImageURL, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	defer rows.Close()

	out := []entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		out = append(out, *p)
	}
	return out, errors.Wrap(rows.Err(), "list products")
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "select product")
	}
	return p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (product_name, product_image_url, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.ProductName, p.ProductImageURL, p.Description, p.Price).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return errors.Wrap(err, "insert product")
}

func (r *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	p.UpdatedAt = time.Now()
	err := r.pool.QueryRow(ctx, `
		UPDATE products
		SET product_name = $1, product_image_url = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`, p.ProductName, p.ProductImageURL, p.Description, p.Price, p.UpdatedAt, p.ID).Scan(&p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return errors.Wrap(err, "update product")
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
