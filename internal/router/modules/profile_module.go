package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/saffco/skincare-backend/internal/interface/http"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Uploads *handlers.UploadHandler
}

func NewProfileModule(h *handlers.ProfileHandler, uploads *handlers.UploadHandler) *ProfileModule {
	return &ProfileModule{Handler: h, Uploads: uploads}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	rg.GET("/profile/:username", m.Handler.GetProfile)
	rg.PUT("/profile/:username", m.Handler.UpdateProfile)
	rg.GET("/uploads/:filename", m.Uploads.Serve)
}
