package repository

import (
	"context"
	"errors"

	"github.com/saffco/skincare-backend/internal/domain/entity"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ProfileUpdate replaces email, phone and address as a whole; nil writes NULL.
// AvatarPath nil leaves the stored avatar untouched.
type ProfileUpdate struct {
	Email      *string
	Phone      *string
	Address    *string
	AvatarPath *string
}

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateProfile(ctx context.Context, username string, in ProfileUpdate) error
}
