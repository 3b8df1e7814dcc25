package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

// LoginUserInput carries raw login credentials.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUser authenticates an existing account and issues a token pair. Every
// failure mode surfaces the same UnauthorizedError so accounts cannot be
// enumerated.
type LoginUser struct {
	users  repository.UserRepository
	tokens AuthTokenService
	logger *logrus.Logger
}

func NewLoginUser(users repository.UserRepository, tokens AuthTokenService, logger *logrus.Logger) *LoginUser {
	return &LoginUser{users: users, tokens: tokens, logger: logger}
}

func (uc *LoginUser) Execute(ctx context.Context, in LoginUserInput) (*AuthResult, error) {
	emailRes := valueobject.NewEmail(in.Email)
	if emailRes.IsFailure() {
		return nil, apperror.NewUnauthorized("Invalid credentials")
	}

	user, err := uc.users.FindByEmail(ctx, emailRes.Value())
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Password().Compare(in.Password) {
		return nil, apperror.NewUnauthorized("Invalid credentials")
	}

	result, err := issueTokens(uc.tokens, user)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.WithField("user_id", user.ID().String()).Info("user logged in")
	}
	return result, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (uc *LoginUser) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	payload := uc.tokens.VerifyRefreshToken(refreshToken)
	if payload == nil {
		return nil, apperror.NewUnauthorized("Invalid refresh token")
	}

	user, err := uc.users.FindByID(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewUnauthorized("Invalid refresh token")
	}

	return issueTokens(uc.tokens, user)
}
