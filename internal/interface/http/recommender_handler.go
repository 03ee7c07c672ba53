package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/application"
	"github.com/saffco/skincare-backend/pkg/response"
)

type RecommenderHandler struct {
	Svc    *application.RecommenderService
	Logger *logrus.Logger
}

func NewRecommenderHandler(svc *application.RecommenderService, logger *logrus.Logger) *RecommenderHandler {
	return &RecommenderHandler{Svc: svc, Logger: logger}
}

// LoadData GET /load-data
func (h *RecommenderHandler) LoadData(c *gin.Context) {
	data, err := h.Svc.Load(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": data}, "Data loaded successfully", nil)
}

// Recommend POST /recommend. The input is accepted but not used for ranking.
func (h *RecommenderHandler) Recommend(c *gin.Context) {
	var body any
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			respondInvalidPayload(c, err)
			return
		}
	}
	input, _ := body.(map[string]any)
	data, err := h.Svc.Recommend(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": data}, "Recommendations generated", nil)
}
