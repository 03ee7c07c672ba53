package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/saffco/skincare-backend/internal/domain/apperr"
	"github.com/saffco/skincare-backend/pkg/response"
	"github.com/saffco/skincare-backend/pkg/validation"
)

// respondError writes err as an envelope with the status of its kind.
// Server-side failures are logged with their cause; the body only carries a generic message.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"client_ip":  c.GetString("real_ip"),
		}).Error("request failed")
	}
	response.Error[any](c, status, apperr.PublicMessage(err), nil)
}

func respondInvalidPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

// pathID parses an integer path parameter. Non-numeric ids do not match any
// row, so callers answer them with their not-found error.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
