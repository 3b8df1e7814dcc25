package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP exempts loopback and RFC 1918 clients from rate limiting,
// which keeps health checks and in-cluster callers unthrottled.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		ip := net.ParseIP(ipFromCtx(c))
		if ip == nil {
			return false
		}
		return ip.IsLoopback() || ip.IsPrivate()
	}
}
