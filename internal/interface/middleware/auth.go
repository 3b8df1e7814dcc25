package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/pkg/response"
)

// Context keys set for downstream handlers.
const (
	CtxUserIDKey = "userID"
	CtxEmailKey  = "userEmail"
)

// Auth verifies the bearer access token through the token-service port and
// injects the token payload into the Gin context. Tokens are stateless; no
// session lookup happens here.
func Auth(tokens application.AuthTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing access token", apperror.CodeUnauthorized)
			return
		}

		payload := tokens.VerifyAccessToken(token)
		if payload == nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid access token", apperror.CodeUnauthorized)
			return
		}

		c.Set(CtxUserIDKey, payload.UserID)
		c.Set(CtxEmailKey, payload.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
