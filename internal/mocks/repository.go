// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/saffco/skincare-backend/internal/domain/entity"
	"github.com/saffco/skincare-backend/internal/domain/repository"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, username string, in repository.ProfileUpdate) error {
	return m.Called(ctx, username, in).Error(0)
}

type ArticleRepository struct{ mock.Mock }

func (m *ArticleRepository) List(ctx context.Context) ([]entity.Article, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]entity.Article)
	return out, args.Error(1)
}

func (m *ArticleRepository) GetByID(ctx context.Context, id int64) (*entity.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.Article)
	return a, args.Error(1)
}

func (m *ArticleRepository) Create(ctx context.Context, a *entity.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ArticleRepository) Update(ctx context.Context, a *entity.Article) error {
	return m.Called(ctx, a).Error(0)
}

func (m *ArticleRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]entity.Product)
	return out, args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type FavoriteRepository struct{ mock.Mock }

func (m *FavoriteRepository) ListByUsername(ctx context.Context, username string) ([]entity.Favorite, error) {
	args := m.Called(ctx, username)
	out, _ := args.Get(0).([]entity.Favorite)
	return out, args.Error(1)
}

func (m *FavoriteRepository) Create(ctx context.Context, f *entity.Favorite) error {
	return m.Called(ctx, f).Error(0)
}

func (m *FavoriteRepository) Delete(ctx context.Context, username string, id int64) error {
	return m.Called(ctx, username, id).Error(0)
}

var (
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.ArticleRepository  = (*ArticleRepository)(nil)
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.FavoriteRepository = (*FavoriteRepository)(nil)
)
