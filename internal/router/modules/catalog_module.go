package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/saffco/skincare-backend/internal/interface/http"
)

// CatalogModule exposes articles and products.
// Reads are public under /articles and /products; writes live under /admin.
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	h := m.Handler

	rg.GET("/articles", h.ListArticles)
	rg.GET("/articles/search", h.SearchArticles)
	rg.GET("/articles/:id", h.GetArticle)

	rg.GET("/products", h.ListProducts)
	rg.GET("/products/search", h.SearchProducts)
	rg.GET("/products/:id", h.GetProduct)

	admin := rg.Group("/admin")
	{
		admin.POST("/articles", h.CreateArticle)
		admin.PUT("/articles/:id", h.UpdateArticle)
		admin.DELETE("/articles/:id", h.DeleteArticle)

		admin.GET("/products", h.ListProducts)
		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
	}
}
