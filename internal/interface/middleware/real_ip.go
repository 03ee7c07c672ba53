package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// RealIP stores the caller address under "real_ip" for error and access logs.
// Proxy headers are checked in order (CF-Connecting-IP, X-Real-IP, left-most
// X-Forwarded-For) before falling back to c.ClientIP().
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := firstValidIP(
			c.GetHeader("CF-Connecting-IP"),
			c.GetHeader("X-Real-IP"),
			strings.SplitN(c.GetHeader("X-Forwarded-For"), ",", 2)[0],
		)
		if ip == "" {
			ip = c.ClientIP()
		}
		c.Set("real_ip", ip)
		c.Next()
	}
}

func firstValidIP(candidates ...string) string {
	for _, s := range candidates {
		if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
			return ip.String()
		}
	}
	return ""
}
