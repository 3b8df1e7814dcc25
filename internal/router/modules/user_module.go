package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fitlife/fitlife-api/internal/application"
	handlers "github.com/fitlife/fitlife-api/internal/interface/http"
	"github.com/fitlife/fitlife-api/internal/interface/middleware"
)

// UserModule registers the authenticated profile and search routes.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  application.AuthTokenService
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, tokens application.AuthTokenService, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Tokens))

	limit := middleware.RateLimit(m.Redis, 60, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP())

	users.GET("/profile", limit, m.Handler.GetProfile)
	users.PUT("/profile", limit, m.Handler.UpdateProfile)
	users.GET("/search", limit, m.Handler.Search)
}
