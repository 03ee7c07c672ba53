package middleware

import (
	"expvar"
	"strconv"

	"github.com/gin-gonic/gin"
)

var httpResponses = expvar.NewMap("http_responses")

// Metrics counts responses by status code in the "http_responses" expvar map.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpResponses.Add(strconv.Itoa(c.Writer.Status()), 1)
	}
}
