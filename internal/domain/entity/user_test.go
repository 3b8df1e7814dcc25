package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

func validProps(name string) UserProps {
	return UserProps{
		Email:    valueobject.NewEmail("jo@fit.life").Value(),
		Password: valueobject.NewPassword("$2a$10$fakehashfakehashfakehash", true).Value(),
		Name:     name,
	}
}

func TestNewUser(t *testing.T) {
	t.Run("trims name and stamps timestamps", func(t *testing.T) {
		res := NewUser(validProps("  Jo  "))
		require.True(t, res.IsOK())

		u := res.Value()
		assert.Equal(t, "Jo", u.Name())
		assert.NotEmpty(t, u.ID().String())
		assert.Equal(t, u.CreatedAt(), u.UpdatedAt())
		assert.False(t, u.CreatedAt().IsZero())
	})

	t.Run("name too short", func(t *testing.T) {
		res := NewUser(validProps(" J "))
		require.True(t, res.IsFailure())
		assert.Equal(t, "Name must be at least 2 characters", res.Err())
	})

	t.Run("name too long", func(t *testing.T) {
		res := NewUser(validProps(strings.Repeat("a", 101)))
		require.True(t, res.IsFailure())
		assert.Equal(t, "Name must not exceed 100 characters", res.Err())
	})

	t.Run("boundary lengths hold", func(t *testing.T) {
		assert.True(t, NewUser(validProps("Jo")).IsOK())
		assert.True(t, NewUser(validProps(strings.Repeat("a", 100))).IsOK())
	})
}

func TestRestoreUser(t *testing.T) {
	created := NewUser(validProps("Jo")).Value()

	res := RestoreUser(created.ID(), validProps("Jo"), created.CreatedAt(), created.UpdatedAt())
	require.True(t, res.IsOK())

	u := res.Value()
	assert.True(t, created.ID().Equals(u.ID()))
	assert.Equal(t, created.CreatedAt(), u.CreatedAt())
	assert.Equal(t, created.UpdatedAt(), u.UpdatedAt())
}

func TestUpdateName(t *testing.T) {
	t.Run("renames and bumps updatedAt", func(t *testing.T) {
		u := NewUser(validProps("Jo")).Value()
		before := u.UpdatedAt()

		res := u.UpdateName("  Joanna  ")
		require.True(t, res.IsOK())
		assert.Equal(t, "Joanna", u.Name())
		assert.False(t, u.UpdatedAt().Before(before))
	})

	t.Run("failure leaves entity untouched", func(t *testing.T) {
		u := NewUser(validProps("Jo")).Value()
		before := u.UpdatedAt()

		for _, bad := range []string{"x", " ", strings.Repeat("a", 101)} {
			res := u.UpdateName(bad)
			require.True(t, res.IsFailure(), "expected %q to fail", bad)
			assert.Equal(t, "Name must be between 2 and 100 characters", res.Err())
			assert.Equal(t, "Jo", u.Name())
			assert.Equal(t, before, u.UpdatedAt())
		}
	})
}
