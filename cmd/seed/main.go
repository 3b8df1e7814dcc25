package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/fitlife/fitlife-api/config"
	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/infrastructure/jwtauth"
	"github.com/fitlife/fitlife-api/internal/infrastructure/postgres"
	"github.com/fitlife/fitlife-api/pkg/helpers"
)

// Seeds a demo account through the registration use case so the stored row
// passes the same invariants as a real signup.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	tokens := jwtauth.NewTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)
	register := application.NewRegisterUser(users, tokens, logger)

	email := "demo@fitlife.io"
	password := "password123"
	name := "Demo User"

	res, err := register.Execute(ctx, application.RegisterUserInput{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		var conflict *apperror.UserAlreadyExistsError
		if errors.As(err, &conflict) {
			fmt.Printf("demo user already seeded: email=%s\n", email)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}

	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", res.User.ID, res.User.Email, res.User.Name, password)
}
