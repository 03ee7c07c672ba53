package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/saffco/skincare-backend/internal/interface/http"
)

type FavoriteModule struct {
	Handler *handlers.FavoriteHandler
}

func NewFavoriteModule(h *handlers.FavoriteHandler) *FavoriteModule {
	return &FavoriteModule{Handler: h}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	rg.GET("/favorites/:username", m.Handler.List)
	rg.POST("/favorites/:username", m.Handler.Add)
	rg.DELETE("/favorites/:username/:id", m.Handler.Remove)
}
