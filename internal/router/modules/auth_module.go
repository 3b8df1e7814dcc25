package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/fitlife/fitlife-api/internal/interface/http"
	"github.com/fitlife/fitlife-api/internal/interface/middleware"
)

// AuthModule registers the public authentication routes.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	allow := middleware.AllowPrivateIP()
	registerLimit := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), allow)
	loginLimit := middleware.RateLimit(m.Redis, 20, time.Minute, middleware.KeyByIPAndPath(), allow)

	auth.POST("/register", registerLimit, m.Handler.RegisterUser)
	auth.POST("/login", loginLimit, m.Handler.LoginUser)
	auth.POST("/refresh", loginLimit, m.Handler.RefreshToken)
}
