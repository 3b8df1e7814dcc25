package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/infrastructure/memory"
)

func registerAccount(t *testing.T, repo *memory.UserRepository, tokens application.AuthTokenService) *application.AuthResult {
	t.Helper()
	res, err := application.NewRegisterUser(repo, tokens, nil).Execute(context.Background(), application.RegisterUserInput{
		Name: "Jo", Email: "jo@fit.life", Password: "abcd1234",
	})
	require.NoError(t, err)
	return res
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	tokens := newTokenService()
	registerAccount(t, repo, tokens)

	uc := application.NewLoginUser(repo, tokens, nil)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := uc.Execute(ctx, application.LoginUserInput{Email: "JO@fit.life", Password: "abcd1234"})
		require.NoError(t, err)
		assert.Equal(t, "jo@fit.life", res.User.Email)
		require.NotNil(t, tokens.VerifyAccessToken(res.AccessToken))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Execute(ctx, application.LoginUserInput{Email: "jo@fit.life", Password: "abcd12345"})
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
		assert.Equal(t, "Invalid credentials", unauthorized.Message)
	})

	t.Run("unknown email reads identically to wrong password", func(t *testing.T) {
		_, err := uc.Execute(ctx, application.LoginUserInput{Email: "ghost@fit.life", Password: "abcd1234"})
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
		assert.Equal(t, "Invalid credentials", unauthorized.Message)
	})

	t.Run("malformed email reads identically", func(t *testing.T) {
		_, err := uc.Execute(ctx, application.LoginUserInput{Email: "nonsense", Password: "abcd1234"})
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	tokens := newTokenService()
	registered := registerAccount(t, repo, tokens)

	uc := application.NewLoginUser(repo, tokens, nil)

	t.Run("valid refresh token yields a fresh pair", func(t *testing.T) {
		res, err := uc.Refresh(ctx, registered.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, res.User.ID)
		require.NotNil(t, tokens.VerifyAccessToken(res.AccessToken))
		require.NotNil(t, tokens.VerifyRefreshToken(res.RefreshToken))
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := uc.Refresh(ctx, "not-a-token")
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := uc.Refresh(ctx, registered.AccessToken)
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})

	t.Run("token for a deleted account rejected", func(t *testing.T) {
		other := memory.NewUserRepository()
		ucEmpty := application.NewLoginUser(other, tokens, nil)
		_, err := ucEmpty.Refresh(ctx, registered.RefreshToken)
		var unauthorized *apperror.UnauthorizedError
		require.ErrorAs(t, err, &unauthorized)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()
	tokens := newTokenService()
	registered := registerAccount(t, repo, tokens)

	uc := application.NewProfile(repo)

	t.Run("get", func(t *testing.T) {
		view, err := uc.Get(ctx, registered.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jo", view.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := uc.Get(ctx, "no-such-id")
		var notFound *apperror.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("rename", func(t *testing.T) {
		view, err := uc.UpdateName(ctx, registered.User.ID, "  Joanna ")
		require.NoError(t, err)
		assert.Equal(t, "Joanna", view.Name)
	})

	t.Run("invalid rename leaves stored name unchanged", func(t *testing.T) {
		_, err := uc.UpdateName(ctx, registered.User.ID, "x")
		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr)

		view, err := uc.Get(ctx, registered.User.ID)
		require.NoError(t, err)
		assert.Equal(t, "Joanna", view.Name)
	})
}
