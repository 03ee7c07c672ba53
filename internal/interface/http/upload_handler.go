package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saffco/skincare-backend/internal/infrastructure/storage"
	"github.com/saffco/skincare-backend/pkg/response"
)

// UploadHandler serves files written by the local stager.
type UploadHandler struct {
	Files *storage.LocalStager
}

func NewUploadHandler(files *storage.LocalStager) *UploadHandler {
	return &UploadHandler{Files: files}
}

// Serve GET /uploads/:filename
func (h *UploadHandler) Serve(c *gin.Context) {
	p, ok := h.Files.Path(c.Param("filename"))
	if !ok {
		response.Error[any](c, http.StatusNotFound, "File not found", nil)
		return
	}
	c.File(p)
}
