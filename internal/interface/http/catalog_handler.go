package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/application"
	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

type articleRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImagePath *string `json:"image_path"`
}

func (r articleRequest) input() application.ArticleInput {
	return application.ArticleInput{Title: r.Title, Content: r.Content, ImagePath: r.ImagePath}
}

type productRequest struct {
	ProductName     string          `json:"product_name"`
	ProductImageURL *string         `json:"product_image_url"`
	Description     *string         `json:"description"`
	Price           json.RawMessage `json:"price"`
}

var errInvalidPrice = apperr.Validation("Price must be a number")

// maxPrice is the largest value the NUMERIC(12,2) price column holds.
const maxPrice = 9999999999.99

// input resolves price, which form-driven clients send as a string.
func (r productRequest) input() (application.ProductInput, error) {
	in := application.ProductInput{ProductName: r.ProductName, ProductImageURL: r.ProductImageURL, Description: r.Description}
	raw := bytes.TrimSpace(r.Price)
	if len(raw) == 0 || string(raw) == "null" {
		return in, nil
	}
	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return in, errInvalidPrice
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return in, nil
		}
	} else {
		s = string(raw)
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || math.Abs(p) > maxPrice {
		return in, errInvalidPrice
	}
	in.Price = &p
	return in, nil
}

type searchQuery struct {
	Q    string `form:"q"`
	Size int    `form:"size" binding:"omitempty,pagesize"`
}

// ListArticles GET /articles
func (h *CatalogHandler) ListArticles(c *gin.Context) {
	out, err := h.Svc.ListArticles(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"articles": out}, "Articles retrieved successfully", nil)
}

// GetArticle GET /articles/:id
func (h *CatalogHandler) GetArticle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrArticleNotFound)
		return
	}
	a, err := h.Svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"article": a}, "Article retrieved successfully", nil)
}

// SearchArticles GET /articles/search?q=
func (h *CatalogHandler) SearchArticles(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.Svc.SearchArticles(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"articles": out}, "Search completed", nil)
}

// CreateArticle POST /admin/articles
func (h *CatalogHandler) CreateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	a, err := h.Svc.CreateArticle(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"article": a}, "Article added successfully", nil)
}

// UpdateArticle PUT /admin/articles/:id
func (h *CatalogHandler) UpdateArticle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrArticleNotFound)
		return
	}
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	a, err := h.Svc.UpdateArticle(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"article": a}, "Article updated successfully", nil)
}

// DeleteArticle DELETE /admin/articles/:id
func (h *CatalogHandler) DeleteArticle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrArticleNotFound)
		return
	}
	if err := h.Svc.DeleteArticle(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Article deleted successfully", nil)
}

// ListProducts GET /products and GET /admin/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	out, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": out}, "Products retrieved successfully", nil)
}

// GetProduct GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrProductNotFound)
		return
	}
	p, err := h.Svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p}, "Product retrieved successfully", nil)
}

// SearchProducts GET /products/search?q=
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	out, err := h.Svc.SearchProducts(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": out}, "Search completed", nil)
}

// CreateProduct POST /admin/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	p, err := h.Svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": p}, "Product added successfully", nil)
}

// UpdateProduct PUT /admin/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrProductNotFound)
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	in, err := req.input()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	p, err := h.Svc.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p}, "Product updated successfully", nil)
}

// DeleteProduct DELETE /admin/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrProductNotFound)
		return
	}
	if err := h.Svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Product deleted successfully", nil)
}
