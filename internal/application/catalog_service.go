package application

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/internal/domain/entity"
	repo "github.com/saffco/skincare-backend/internal/domain/repository"
	"github.com/saffco/skincare-backend/internal/domain/service"
)

var (
	ErrArticleFieldsRequired = apperr.Validation("Title and content are required")
	ErrProductFieldsRequired = apperr.Validation("Product name and price are required")
	ErrArticleNotFound       = apperr.NotFound("Article not found")
	ErrProductNotFound       = apperr.NotFound("Product not found")
)

const defaultSearchSize = 10

type ArticleInput struct {
	Title     string
	Content   string
	ImagePath *string
}

type ProductInput struct {
	ProductName     string
	ProductImageURL *string
	Description     *string
	Price           *float64
}

// CatalogService manages articles and products. Writes are mirrored into the
// search index when one is configured; index failures are only logged.
type CatalogService struct {
	Articles      repo.ArticleRepository
	Products      repo.ProductRepository
	Index         service.SearchIndex
	ArticlesIndex string
	ProductsIndex string
	Logger        *logrus.Logger
}

func NewCatalogService(articles repo.ArticleRepository, products repo.ProductRepository, index service.SearchIndex, articlesIndex, productsIndex string, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		Articles:      articles,
		Products:      products,
		Index:         index,
		ArticlesIndex: articlesIndex,
		ProductsIndex: productsIndex,
		Logger:        logger,
	}
}

func (s *CatalogService) ListArticles(ctx context.Context) ([]entity.Article, error) {
	out, err := s.Articles.List(ctx)
	if err != nil {
		return nil, apperr.IO("list articles", err)
	}
	return out, nil
}

func (s *CatalogService) GetArticle(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := s.Articles.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrArticleNotFound, "get article")
	}
	return a, nil
}

func (s *CatalogService) CreateArticle(ctx context.Context, in ArticleInput) (*entity.Article, error) {
	if in.Title == "" || in.Content == "" {
		return nil, ErrArticleFieldsRequired
	}
	a := &entity.Article{Title: in.Title, Content: in.Content, ImagePath: in.ImagePath}
	if err := s.Articles.Create(ctx, a); err != nil {
		return nil, apperr.IO("create article", err)
	}
	s.indexDoc(ctx, s.ArticlesIndex, a.ID, a)
	return a, nil
}

// UpdateArticle overwrites every column of the article.
func (s *CatalogService) UpdateArticle(ctx context.Context, id int64, in ArticleInput) (*entity.Article, error) {
	if in.Title == "" || in.Content == "" {
		return nil, ErrArticleFieldsRequired
	}
	a := &entity.Article{ID: id, Title: in.Title, Content: in.Content, ImagePath: in.ImagePath}
	if err := s.Articles.Update(ctx, a); err != nil {
		return nil, notFoundOr(err, ErrArticleNotFound, "update article")
	}
	s.indexDoc(ctx, s.ArticlesIndex, a.ID, a)
	return a, nil
}

func (s *CatalogService) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.Articles.Delete(ctx, id); err != nil {
		return notFoundOr(err, ErrArticleNotFound, "delete article")
	}
	s.unindexDoc(ctx, s.ArticlesIndex, id)
	return nil
}

func (s *CatalogService) SearchArticles(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.search(ctx, s.ArticlesIndex, q, []string{"title^2", "content"}, size)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	out, err := s.Products.List(ctx)
	if err != nil {
		return nil, apperr.IO("list products", err)
	}
	return out, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrProductNotFound, "get product")
	}
	return p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if in.ProductName == "" || in.Price == nil || *in.Price == 0 {
		return nil, ErrProductFieldsRequired
	}
	p := &entity.Product{ProductName: in.ProductName, ProductImageURL: in.ProductImageURL, Description: in.Description, Price: *in.Price}
	if err := s.Products.Create(ctx, p); err != nil {
		return nil, apperr.IO("create product", err)
	}
	s.indexDoc(ctx, s.ProductsIndex, p.ID, p)
	return p, nil
}

// UpdateProduct overwrites every column of the product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*entity.Product, error) {
	if in.ProductName == "" || in.Price == nil || *in.Price == 0 {
		return nil, ErrProductFieldsRequired
	}
	p := &entity.Product{ID: id, ProductName: in.ProductName, ProductImageURL: in.ProductImageURL, Description: in.Description, Price: *in.Price}
	if err := s.Products.Update(ctx, p); err != nil {
		return nil, notFoundOr(err, ErrProductNotFound, "update product")
	}
	s.indexDoc(ctx, s.ProductsIndex, p.ID, p)
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.Products.Delete(ctx, id); err != nil {
		return notFoundOr(err, ErrProductNotFound, "delete product")
	}
	s.unindexDoc(ctx, s.ProductsIndex, id)
	return nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return s.search(ctx, s.ProductsIndex, q, []string{"product_name^2", "description"}, size)
}

func (s *CatalogService) search(ctx context.Context, index, q string, fields []string, size int) ([]map[string]any, error) {
	if s.Index == nil || index == "" || q == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = defaultSearchSize
	}
	out, err := s.Index.Search(ctx, index, q, fields, size)
	if err != nil {
		return nil, apperr.IO("search "+index, err)
	}
	return out, nil
}

func (s *CatalogService) indexDoc(ctx context.Context, index string, id int64, doc any) {
	if s.Index == nil || index == "" {
		return
	}
	if err := s.Index.Index(ctx, index, strconv.FormatInt(id, 10), doc); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"index": index, "id": id}).Warn("es index failed")
	}
}

func (s *CatalogService) unindexDoc(ctx context.Context, index string, id int64) {
	if s.Index == nil || index == "" {
		return
	}
	if err := s.Index.Delete(ctx, index, strconv.FormatInt(id, 10)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{"index": index, "id": id}).Warn("es delete failed")
	}
}

func notFoundOr(err error, notFound *apperr.Error, op string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return notFound
	}
	return apperr.IO(op, err)
}
