package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/application"
	"github.com/saffco/skincare-backend/pkg/response"
)

type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

type favoriteRequest struct {
	ArticleID       *int64  `json:"article_id" binding:"omitempty,gt=0"`
	ProductName     string  `json:"product_name"`
	ProductImageURL *string `json:"product_image_url"`
}

// List GET /favorites/:username
func (h *FavoriteHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"favorites": out}, "Favorites retrieved successfully", nil)
}

// Add POST /favorites/:username
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	f, err := h.Svc.Add(c.Request.Context(), c.Param("username"), application.FavoriteInput{
		ArticleID:       req.ArticleID,
		ProductName:     req.ProductName,
		ProductImageURL: req.ProductImageURL,
	})
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"favorite": f}, "Favorite added successfully", nil)
}

// Remove DELETE /favorites/:username/:id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.Logger, application.ErrFavoriteNotFound)
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), c.Param("username"), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Favorite removed successfully", nil)
}
