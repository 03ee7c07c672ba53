package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/saffco/skincare-backend/pkg/response"
)

// StaticHandler serves the front-end bundle for any unmatched GET path.
type StaticHandler struct {
	Root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{Root: root}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error[any](c, http.StatusNotFound, "Not found", nil)
		return
	}
	rel := path.Clean("/" + c.Request.URL.Path)
	if rel == "/" {
		rel = "/index.html"
	}
	p := filepath.Join(h.Root, filepath.FromSlash(rel))
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		response.Error[any](c, http.StatusNotFound, "Not found", nil)
		return
	}
	c.File(p)
}
