package application

import (
	"context"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
)

// Profile reads and mutates the account's public profile.
type Profile struct {
	users repository.UserRepository
}

func NewProfile(users repository.UserRepository) *Profile {
	return &Profile{users: users}
}

func (uc *Profile) Get(ctx context.Context, userID string) (*UserView, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("User not found")
	}
	view := viewOf(user)
	return &view, nil
}

// UpdateName renames the account through the entity invariant and persists
// the result. A failed rename leaves both entity and store untouched.
func (uc *Profile) UpdateName(ctx context.Context, userID, newName string) (*UserView, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFound("User not found")
	}

	if res := user.UpdateName(newName); res.IsFailure() {
		return nil, apperror.NewValidation(res.Err())
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}

	view := viewOf(user)
	return &view, nil
}
