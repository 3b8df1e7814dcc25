package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/application"
	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
	"github.com/fitlife/fitlife-api/internal/infrastructure/jwtauth"
	"github.com/fitlife/fitlife-api/internal/infrastructure/memory"
)

func newTokenService() *jwtauth.TokenService {
	return jwtauth.NewTokenService("test-access", "test-refresh", 15*time.Minute, 168*time.Hour)
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and issues verifiable tokens", func(t *testing.T) {
		repo := memory.NewUserRepository()
		tokens := newTokenService()
		uc := application.NewRegisterUser(repo, tokens, nil)

		res, err := uc.Execute(ctx, application.RegisterUserInput{
			Name:     "Jo",
			Email:    "A@B.COM",
			Password: "abcd1234",
		})
		require.NoError(t, err)

		// email normalized, name untouched, no password in the view
		assert.Equal(t, "a@b.com", res.User.Email)
		assert.Equal(t, "Jo", res.User.Name)
		assert.NotEmpty(t, res.User.ID)
		assert.False(t, res.User.CreatedAt.IsZero())

		payload := tokens.VerifyAccessToken(res.AccessToken)
		require.NotNil(t, payload)
		assert.Equal(t, res.User.ID, payload.UserID)
		assert.Equal(t, "a@b.com", payload.Email)
		require.NotNil(t, tokens.VerifyRefreshToken(res.RefreshToken))

		// stored password is hashed and comparable
		stored, err := repo.FindByEmail(ctx, valueobject.NewEmail("a@b.com").Value())
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.Password().Hashed())
		assert.True(t, stored.Password().Compare("abcd1234"))
	})

	t.Run("second registration with same email conflicts", func(t *testing.T) {
		repo := memory.NewUserRepository()
		uc := application.NewRegisterUser(repo, newTokenService(), nil)

		first, err := uc.Execute(ctx, application.RegisterUserInput{
			Name: "Jo", Email: "jo@fit.life", Password: "abcd1234",
		})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, application.RegisterUserInput{
			Name: "Other Jo", Email: "JO@fit.life", Password: "abcd1234",
		})
		var conflict *apperror.UserAlreadyExistsError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, apperror.CodeAlreadyExists, conflict.Code)

		// first registration unaffected
		stored, err := repo.FindByID(ctx, first.User.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Jo", stored.Name())
	})

	t.Run("invalid input short-circuits before persistence", func(t *testing.T) {
		cases := []struct {
			name  string
			input application.RegisterUserInput
			msg   string
		}{
			{"bad email", application.RegisterUserInput{Name: "Jo", Email: "nope", Password: "abcd1234"}, "Invalid email format"},
			{"missing email", application.RegisterUserInput{Name: "Jo", Email: "", Password: "abcd1234"}, "Email is required"},
			{"short password", application.RegisterUserInput{Name: "Jo", Email: "jo@fit.life", Password: "ab1"}, "Password must be at least 8 characters"},
			{"no digits", application.RegisterUserInput{Name: "Jo", Email: "jo@fit.life", Password: "abcdefgh"}, "Password must contain numbers"},
			{"no letters", application.RegisterUserInput{Name: "Jo", Email: "jo@fit.life", Password: "12345678"}, "Password must contain letters"},
			{"short name", application.RegisterUserInput{Name: "J", Email: "jo@fit.life", Password: "abcd1234"}, "Name must be at least 2 characters"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := memory.NewUserRepository()
				uc := application.NewRegisterUser(repo, newTokenService(), nil)

				_, err := uc.Execute(ctx, tc.input)
				var verr *apperror.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tc.msg, verr.Message)
				assert.Equal(t, 0, repo.Len(), "no persistence call may occur")
			})
		}
	})

	t.Run("duplicate key at save translates to conflict", func(t *testing.T) {
		// models the check-then-act race: the existence check passes but the
		// unique constraint rejects the insert
		repo := &racingRepo{UserRepository: memory.NewUserRepository()}
		uc := application.NewRegisterUser(repo, newTokenService(), nil)

		_, err := uc.Execute(ctx, application.RegisterUserInput{
			Name: "Jo", Email: "jo@fit.life", Password: "abcd1234",
		})
		var conflict *apperror.UserAlreadyExistsError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("storage failures propagate unmodified", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo := &failingRepo{UserRepository: memory.NewUserRepository(), err: boom}
		uc := application.NewRegisterUser(repo, newTokenService(), nil)

		_, err := uc.Execute(ctx, application.RegisterUserInput{
			Name: "Jo", Email: "jo@fit.life", Password: "abcd1234",
		})
		assert.ErrorIs(t, err, boom)
	})
}

type racingRepo struct {
	*memory.UserRepository
}

func (r *racingRepo) EmailExists(context.Context, valueobject.Email) (bool, error) {
	return false, nil
}

func (r *racingRepo) Save(context.Context, *entity.User) error {
	return repository.ErrDuplicateEmail
}

type failingRepo struct {
	*memory.UserRepository
	err error
}

func (r *failingRepo) EmailExists(context.Context, valueobject.Email) (bool, error) {
	return false, r.err
}
