package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

// SQLSTATE for unique constraint violations
const uniqueViolation = "23505"

// UserRepository persists User aggregates in Postgres. The users.email
// unique index is the authoritative uniqueness guard; violations surface as
// repository.ErrDuplicateEmail.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID().String(), u.Email().String(), u.Password().Value(), u.Name(), u.CreatedAt(), u.UpdatedAt())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email.String())
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, name, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) EmailExists(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email.String(),
	).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, u.Name(), u.UpdatedAt(), u.ID().String())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserMissing
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var (
		id, email, hash, name string
		createdAt, updatedAt  time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &email, &hash, &name, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(id, email, hash, name, createdAt, updatedAt)
}

// toDomain rehydrates a row through the domain factories so stored data is
// re-checked against the same invariants it was written under.
func toDomain(id, email, hash, name string, createdAt, updatedAt time.Time) (*entity.User, error) {
	emailRes := valueobject.NewEmail(email)
	if emailRes.IsFailure() {
		return nil, fmt.Errorf("corrupt user row %s: %s", id, emailRes.Err())
	}
	passwordRes := valueobject.NewPassword(hash, true)
	if passwordRes.IsFailure() {
		return nil, fmt.Errorf("corrupt user row %s: %s", id, passwordRes.Err())
	}

	userRes := entity.RestoreUser(valueobject.UniqueIDFrom(id), entity.UserProps{
		Email:    emailRes.Value(),
		Password: passwordRes.Value(),
		Name:     name,
	}, createdAt, updatedAt)
	if userRes.IsFailure() {
		return nil, fmt.Errorf("corrupt user row %s: %s", id, userRes.Err())
	}
	return userRes.Value(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
