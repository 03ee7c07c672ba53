package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/saffco/skincare-backend/internal/interface/http"
)

// AuthModule wires account credential routes.
// POST /register, POST /login, POST /reset-password
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/register", m.Handler.Register)
	rg.POST("/login", m.Handler.Login)
	rg.POST("/reset-password", m.Handler.ResetPassword)
}
