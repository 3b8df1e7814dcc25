package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

func newUser(t *testing.T, email, name string) *entity.User {
	t.Helper()
	res := entity.NewUser(entity.UserProps{
		Email:    valueobject.NewEmail(email).Value(),
		Password: valueobject.NewPassword("$2a$10$fakehashfakehashfakehash", true).Value(),
		Name:     name,
	})
	require.True(t, res.IsOK())
	return res.Value()
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	jo := newUser(t, "jo@fit.life", "Jo")

	require.NoError(t, repo.Save(ctx, jo))

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, valueobject.NewEmail("JO@fit.life").Value())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, jo.ID().Equals(found.ID()))
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, jo.ID().String())
		require.NoError(t, err)
		require.NotNil(t, found)
	})

	t.Run("missing lookups return nil without error", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, valueobject.NewEmail("ghost@fit.life").Value())
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindByID(ctx, "no-such-id")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("email exists", func(t *testing.T) {
		exists, err := repo.EmailExists(ctx, jo.Email())
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.EmailExists(ctx, valueobject.NewEmail("ghost@fit.life").Value())
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("duplicate email rejected on save", func(t *testing.T) {
		dup := newUser(t, "jo@fit.life", "Other Jo")
		err := repo.Save(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("update", func(t *testing.T) {
		require.True(t, jo.UpdateName("Joanna").IsOK())
		require.NoError(t, repo.Update(ctx, jo))

		found, err := repo.FindByID(ctx, jo.ID().String())
		require.NoError(t, err)
		assert.Equal(t, "Joanna", found.Name())
	})

	t.Run("update of missing user fails", func(t *testing.T) {
		ghost := newUser(t, "ghost@fit.life", "Ghost")
		assert.ErrorIs(t, repo.Update(ctx, ghost), repository.ErrUserMissing)
	})
}
