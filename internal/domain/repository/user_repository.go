package repository

import (
	"context"
	"errors"

	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

// ErrDuplicateEmail is returned by Save when the storage-level uniqueness
// constraint on email rejects the write. Two concurrent registrations can
// both pass EmailExists; the constraint is the backstop.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrUserMissing is returned by Update when the target row no longer exists.
var ErrUserMissing = errors.New("user not found")

// UserRepository is the persistence port for the User aggregate. Find
// methods return (nil, nil) when no user matches.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	EmailExists(ctx context.Context, email valueobject.Email) (bool, error)
	Update(ctx context.Context, user *entity.User) error
}
