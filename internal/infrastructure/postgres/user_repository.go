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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, username, passwordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrAlreadyExists
		}
		return 0, errors.Wrap(err, "insert user")
	}
	return id, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, email, phone, address, avatar_path, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username)

	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Phone, &u.Address,
		&u.AvatarPath, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, errors.Wrap(err, "select user")
	}

	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = $2
		WHERE id = $3
	`, passwordHash, time.Now(), id)
	if err != nil {
		return errors.Wrap(err, "update password")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateProfile rewrites email, phone and address in one statement; the
// avatar column only changes when a new path is supplied.
func (r *UserRepository) UpdateProfile(ctx context.Context, username string, in repository.ProfileUpdate) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, phone = $2, address = $3,
		    avatar_path = COALESCE($4, avatar_path),
		    updated_at = $5
		WHERE username = $6
	`, in.Email, in.Phone, in.Address, in.AvatarPath, time.Now(), username)
	if err != nil {
		return errors.Wrap(err, "update profile")
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
