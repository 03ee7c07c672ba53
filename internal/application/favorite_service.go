package application

import (
	"context"

	"github.com/pkg/errors"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
)

var (
	ErrNoFavorites            = apperr.NotFound("No favorites found")
	ErrFavoriteNotFound       = apperr.NotFound("Favorite not found")
	ErrFavoriteTargetRequired = apperr.Validation("article_id or product_name is required")
)

type FavoriteInput struct {
	ArticleID       *int64
	ProductName     string
	ProductImageURL *string
}

type FavoriteService struct {
	Repo  repo.FavoriteRepository
	Users repo.UserRepository
}

func NewFavoriteService(repo repo.FavoriteRepository, users repo.UserRepository) *FavoriteService {
	return &FavoriteService{Repo: repo, Users: users}
}

// List returns the favorites of username; an empty list is reported as not found.
func (s *FavoriteService) List(ctx context.Context, username string) ([]entity.Favorite, error) {
	out, err := s.Repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, apperr.IO("list favorites", err)
	}
	if len(out) == 0 {
		return nil, ErrNoFavorites
	}
	return out, nil
}

func (s *FavoriteService) Add(ctx context.Context, username string, in FavoriteInput) (*entity.Favorite, error) {
	if in.ArticleID == nil && in.ProductName == "" {
		return nil, ErrFavoriteTargetRequired
	}
	if _, err := s.Users.GetByUsername(ctx, username); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.IO("lookup user", err)
	}
	f := &entity.Favorite{
		Username:        username,
		ArticleID:       in.ArticleID,
		ProductName:     in.ProductName,
		ProductImageURL: in.ProductImageURL,
	}
	if err := s.Repo.Create(ctx, f); err != nil {
		return nil, notFoundOr(err, ErrArticleNotFound, "create favorite")
	}
	return f, nil
}

func (s *FavoriteService) Remove(ctx context.Context, username string, id int64) error {
	if err := s.Repo.Delete(ctx, username, id); err != nil {
		return notFoundOr(err, ErrFavoriteNotFound, "delete favorite")
	}
	return nil
}
