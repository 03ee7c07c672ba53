package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffco/skincare-backend/internal/domain/entity"
	"github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

// openTestPool connects to DATABASE_URL and migrates it. The tests write real
// rows, so they only run when RUN_PG_INTEGRATION=true.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("set RUN_PG_INTEGRATION=true to run postgres integration tests")
	}
	for _, p := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(p)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Fatal("DATABASE_URL is required")
	}

	_, file, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(file), "..", "..", "..", "db", "migrations")
	require.NoError(t, RunMigrations(dsn, dir, helpers.NewDiscardLogger()))

	pool, err := NewPool(context.Background(), dsn, 4, 1, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func strPtr(s string) *string { return &s }

func TestUserRepository_Integration(t *testing.T) {
	pool := openTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()
	username := uniqueName("it_user")

	id, err := repo.Create(ctx, username, "hash-1")
	require.NoError(t, err)
	assert.Positive(t, id)

	_, err = repo.Create(ctx, username, "hash-2")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	require.NoError(t, repo.UpdatePassword(ctx, id, "hash-3"))
	u, err := repo.GetByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, "hash-3", u.PasswordHash)

	require.NoError(t, repo.UpdateProfile(ctx, username, repository.ProfileUpdate{
		Email: strPtr("a@b.com"), Phone: strPtr("0812"), Address: strPtr("Bandung"), AvatarPath: strPtr("/uploads/a.png"),
	}))
	require.NoError(t, repo.UpdateProfile(ctx, username, repository.ProfileUpdate{Email: strPtr("c@d.com")}))

	u, err = repo.GetByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", *u.Email)
	assert.Nil(t, u.Phone)
	assert.Nil(t, u.Address)
	require.NotNil(t, u.AvatarPath)
	assert.Equal(t, "/uploads/a.png", *u.AvatarPath)

	assert.ErrorIs(t, repo.UpdateProfile(ctx, uniqueName("ghost"), repository.ProfileUpdate{}), repository.ErrNotFound)
	_, err = repo.GetByUsername(ctx, uniqueName("ghost"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogRepositories_Integration(t *testing.T) {
	pool := openTestPool(t)
	ctx := context.Background()

	articles := NewArticleRepository(pool)
	a := &entity.Article{Title: "Double cleansing", Content: "Oil first, then foam."}
	require.NoError(t, articles.Create(ctx, a))
	a.Title = "Double cleansing 101"
	require.NoError(t, articles.Update(ctx, a))
	got, err := articles.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Double cleansing 101", got.Title)

	products := NewProductRepository(pool)
	p := &entity.Product{ProductName: "Gentle Cleanser", Price: 89000.5}
	require.NoError(t, products.Create(ctx, p))
	gotP, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 89000.5, gotP.Price, 0.001)

	favorites := NewFavoriteRepository(pool)
	owner := uniqueName("it_fav")
	f := &entity.Favorite{Username: owner, ArticleID: &a.ID, ProductName: p.ProductName}
	require.NoError(t, favorites.Create(ctx, f))
	list, err := favorites.ListByUsername(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, *list[0].ArticleID)

	missing := int64(-1)
	assert.ErrorIs(t, favorites.Create(ctx, &entity.Favorite{Username: owner, ArticleID: &missing}), repository.ErrNotFound)

	require.NoError(t, favorites.Delete(ctx, owner, f.ID))
	assert.ErrorIs(t, favorites.Delete(ctx, owner, f.ID), repository.ErrNotFound)
	require.NoError(t, articles.Delete(ctx, a.ID))
	assert.ErrorIs(t, articles.Delete(ctx, a.ID), repository.ErrNotFound)
	require.NoError(t, products.Delete(ctx, p.ID))
	_, err = products.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
