package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/internal/mocks"
	"github.com/saffco/skincare-backend/pkg/helpers"
)

type catalogFixtures struct {
	service  *CatalogService
	articles *mocks.ArticleRepository
	products *mocks.ProductRepository
	index    *mocks.SearchIndex
}

func createTestCatalogService(t *testing.T, withIndex bool) catalogFixtures {
	fx := catalogFixtures{
		articles: &mocks.ArticleRepository{},
		products: &mocks.ProductRepository{},
		index:    &mocks.SearchIndex{},
	}
	if withIndex {
		fx.service = NewCatalogService(fx.articles, fx.products, fx.index, "articles", "products", helpers.NewDiscardLogger())
	} else {
		fx.service = NewCatalogService(fx.articles, fx.products, nil, "articles", "products", helpers.NewDiscardLogger())
	}
	t.Cleanup(func() {
		fx.articles.AssertExpectations(t)
		fx.products.AssertExpectations(t)
		fx.index.AssertExpectations(t)
	})
	return fx
}

func floatPtr(f float64) *float64 { return &f }

func TestCatalogService_CreateArticle_IndexesDocument(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.articles.On("Create", ctx, mock.AnythingOfType("*entity.Article")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Article).ID = 7 }).
		Return(nil)
	fx.index.On("Index", ctx, "articles", "7", mock.AnythingOfType("*entity.Article")).Return(nil)

	a, err := fx.service.CreateArticle(ctx, ArticleInput{Title: "Sunscreen 101", Content: "Apply daily."})

	require.NoError(t, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, "Sunscreen 101", a.Title)
}

func TestCatalogService_CreateArticle_RequiresTitleAndContent(t *testing.T) {
	fx := createTestCatalogService(t, false)

	_, err := fx.service.CreateArticle(context.Background(), ArticleInput{Title: "only title"})

	assert.ErrorIs(t, err, ErrArticleFieldsRequired)
}

func TestCatalogService_IndexFailureDoesNotFailWrite(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.articles.On("Create", ctx, mock.Anything).Return(nil)
	fx.index.On("Index", ctx, "articles", "0", mock.Anything).Return(errors.New("es down"))

	_, err := fx.service.CreateArticle(ctx, ArticleInput{Title: "t", Content: "c"})

	assert.NoError(t, err)
}

func TestCatalogService_UpdateAndDeleteMissingArticle(t *testing.T) {
	fx := createTestCatalogService(t, false)
	ctx := context.Background()

	fx.articles.On("Update", ctx, mock.Anything).Return(repo.ErrNotFound)
	fx.articles.On("Delete", ctx, int64(99)).Return(repo.ErrNotFound)

	_, err := fx.service.UpdateArticle(ctx, 99, ArticleInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrArticleNotFound)

	err = fx.service.DeleteArticle(ctx, 99)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCatalogService_GetArticle_StoreFailureIsIO(t *testing.T) {
	fx := createTestCatalogService(t, false)
	ctx := context.Background()

	fx.articles.On("GetByID", ctx, int64(1)).Return(nil, errors.New("conn reset"))

	_, err := fx.service.GetArticle(ctx, 1)

	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}

func TestCatalogService_CreateProduct_PriceRequired(t *testing.T) {
	fx := createTestCatalogService(t, false)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ProductInput
	}{
		{"missing name", ProductInput{Price: floatPtr(10)}},
		{"missing price", ProductInput{ProductName: "Toner"}},
		{"zero price", ProductInput{ProductName: "Toner", Price: floatPtr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.CreateProduct(ctx, tt.in)
			assert.ErrorIs(t, err, ErrProductFieldsRequired)
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.products.On("Update", ctx, &entity.Product{ID: 3, ProductName: "Serum", Price: 25.5}).Return(nil)
	fx.index.On("Index", ctx, "products", "3", mock.Anything).Return(nil)

	p, err := fx.service.UpdateProduct(ctx, 3, ProductInput{ProductName: "Serum", Price: floatPtr(25.5)})

	require.NoError(t, err)
	assert.Equal(t, 25.5, p.Price)
}

func TestCatalogService_DeleteProduct_Unindexes(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()

	fx.products.On("Delete", ctx, int64(4)).Return(nil)
	fx.index.On("Delete", ctx, "products", "4").Return(nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, 4))
}

func TestCatalogService_Search(t *testing.T) {
	fx := createTestCatalogService(t, true)
	ctx := context.Background()
	hits := []map[string]any{{"title": "Retinol"}}

	fx.index.On("Search", ctx, "articles", "retinol", []string{"title^2", "content"}, defaultSearchSize).Return(hits, nil)

	out, err := fx.service.SearchArticles(ctx, "retinol", 500)
	require.NoError(t, err)
	assert.Equal(t, hits, out)

	out, err = fx.service.SearchArticles(ctx, "", 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCatalogService_SearchWithoutIndexIsEmpty(t *testing.T) {
	fx := createTestCatalogService(t, false)

	out, err := fx.service.SearchProducts(context.Background(), "toner", 5)

	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
