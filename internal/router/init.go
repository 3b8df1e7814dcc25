package router

import (
	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/container"
	"github.com/fitlife/fitlife-api/internal/infrastructure/postgres"
	"github.com/fitlife/fitlife-api/internal/infrastructure/search"
	handlers "github.com/fitlife/fitlife-api/internal/interface/http"
	"github.com/fitlife/fitlife-api/internal/router/modules"
)

// InitModules builds the repositories, use cases and handlers, and adds
// every feature module to the registry.
func InitModules(reg *Registry, c *container.Container) {
	users := postgres.NewUserRepository(c.PG)

	register := application.NewRegisterUser(users, c.Tokens, c.Logger)
	login := application.NewLoginUser(users, c.Tokens, c.Logger)
	profile := application.NewProfile(users)

	index := search.NewUserIndex(c.ES, c.Cfg.ESUsersIndex, c.Logger)

	authHandler := handlers.NewAuthHandler(register, login, c.Logger, c.Pub, index, c.Cfg.MailSendEnabled)
	userHandler := handlers.NewUserHandler(profile, index, c.Logger)

	reg.Add(modules.NewAuthModule(authHandler, c.Redis))
	reg.Add(modules.NewUserModule(userHandler, c.Tokens, c.Redis))
}
