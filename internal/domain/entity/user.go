package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fitlife/fitlife-api/internal/domain/core"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

const (
	nameMinLen = 2
	nameMaxLen = 100
)

// User is the aggregate root of the account domain. All fields are guarded
// by the factories below; email and password are always valid value objects
// and the name bounds always hold.
type User struct {
	id        valueobject.UniqueID
	email     valueobject.Email
	password  valueobject.Password
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// UserProps are the inputs for constructing a User.
type UserProps struct {
	Email    valueobject.Email
	Password valueobject.Password
	Name     string
}

// NewUser builds a fresh User with a generated identity and both timestamps
// stamped to now.
func NewUser(props UserProps) core.Result[*User] {
	name, res := validateName(props.Name)
	if res.IsFailure() {
		return core.Fail[*User](res.Err())
	}

	now := time.Now().UTC()
	return core.Ok(&User{
		id:        valueobject.NewUniqueID(),
		email:     props.Email,
		password:  props.Password,
		name:      name,
		createdAt: now,
		updatedAt: now,
	})
}

// RestoreUser rehydrates a persisted User, keeping its stored identity and
// timestamps. The name invariant is still enforced.
func RestoreUser(id valueobject.UniqueID, props UserProps, createdAt, updatedAt time.Time) core.Result[*User] {
	name, res := validateName(props.Name)
	if res.IsFailure() {
		return core.Fail[*User](res.Err())
	}

	return core.Ok(&User{
		id:        id,
		email:     props.Email,
		password:  props.Password,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	})
}

func (u *User) ID() valueobject.UniqueID       { return u.id }
func (u *User) Email() valueobject.Email       { return u.email }
func (u *User) Password() valueobject.Password { return u.password }
func (u *User) Name() string                   { return u.name }
func (u *User) CreatedAt() time.Time           { return u.createdAt }
func (u *User) UpdatedAt() time.Time           { return u.updatedAt }

// UpdateName renames the user and bumps updatedAt. On failure the entity is
// left completely unchanged.
func (u *User) UpdateName(newName string) core.Result[core.Unit] {
	trimmed := strings.TrimSpace(newName)
	n := utf8.RuneCountInString(trimmed)
	if n < nameMinLen || n > nameMaxLen {
		return core.Fail[core.Unit]("Name must be between 2 and 100 characters")
	}

	u.name = trimmed
	u.updatedAt = time.Now().UTC()
	return core.OkUnit()
}

func validateName(raw string) (string, core.Result[core.Unit]) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	if n < nameMinLen {
		return "", core.Fail[core.Unit]("Name must be at least 2 characters")
	}
	if n > nameMaxLen {
		return "", core.Fail[core.Unit]("Name must not exceed 100 characters")
	}
	return name, core.OkUnit()
}
