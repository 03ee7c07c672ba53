package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/saffco/skincare-backend/internal/interface/http"
)

type RecommenderModule struct {
	Handler *handlers.RecommenderHandler
}

func NewRecommenderModule(h *handlers.RecommenderHandler) *RecommenderModule {
	return &RecommenderModule{Handler: h}
}

func (m *RecommenderModule) Register(rg *gin.RouterGroup) {
	rg.GET("/load-data", m.Handler.LoadData)
	rg.POST("/recommend", m.Handler.Recommend)
}
