// Package memory provides a mutex-guarded in-memory UserRepository. It
// enforces the same email uniqueness contract as the SQL adapter and backs
// unit tests and local tooling.
package memory

import (
	"context"
	"sync"

	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*entity.User
	byEmail map[string]string // email -> id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) Save(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := user.Email().String()
	if ownerID, ok := r.byEmail[email]; ok && ownerID != user.ID().String() {
		return repository.ErrDuplicateEmail
	}

	r.byID[user.ID().String()] = user
	r.byEmail[email] = user.ID().String()
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email valueobject.Email) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email.String()]
	if !ok {
		return nil, nil
	}
	return r.byID[id], nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *UserRepository) EmailExists(_ context.Context, email valueobject.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email.String()]
	return ok, nil
}

func (r *UserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID().String()]; !ok {
		return repository.ErrUserMissing
	}
	r.byID[user.ID().String()] = user
	return nil
}

// Len reports the number of stored users; test helper.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

var _ repository.UserRepository = (*UserRepository)(nil)
