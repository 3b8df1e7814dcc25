package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fitlife/fitlife-api/internal/apperror"
	"github.com/fitlife/fitlife-api/internal/domain/entity"
	"github.com/fitlife/fitlife-api/internal/domain/repository"
	"github.com/fitlife/fitlife-api/internal/domain/valueobject"
)

// RegisterUserInput is the raw registration request, shape-checked by the
// transport boundary before it reaches the use case.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserView is the public projection of a User. The password never appears.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResult is returned by every authenticating use case.
type AuthResult struct {
	User         UserView `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

// RegisterUser orchestrates the account-registration protocol: value-object
// validation, uniqueness enforcement, credential hashing, entity
// construction, persistence and token issuance, short-circuiting on the
// first failure.
type RegisterUser struct {
	users  repository.UserRepository
	tokens AuthTokenService
	logger *logrus.Logger
}

func NewRegisterUser(users repository.UserRepository, tokens AuthTokenService, logger *logrus.Logger) *RegisterUser {
	return &RegisterUser{users: users, tokens: tokens, logger: logger}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterUserInput) (*AuthResult, error) {
	emailRes := valueobject.NewEmail(in.Email)
	if emailRes.IsFailure() {
		return nil, apperror.NewValidation(emailRes.Err())
	}
	email := emailRes.Value()

	passwordRes := valueobject.NewPassword(in.Password, false)
	if passwordRes.IsFailure() {
		return nil, apperror.NewValidation(passwordRes.Err())
	}
	password := passwordRes.Value()

	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewUserAlreadyExists("Email already exists")
	}

	digest, err := password.Hash()
	if err != nil {
		return nil, err
	}
	// re-wrapping a hashed value skips strength checks and cannot fail
	hashedRes := valueobject.NewPassword(digest, true)
	if hashedRes.IsFailure() {
		return nil, apperror.NewValidation(hashedRes.Err())
	}

	userRes := entity.NewUser(entity.UserProps{
		Email:    email,
		Password: hashedRes.Value(),
		Name:     in.Name,
	})
	if userRes.IsFailure() {
		return nil, apperror.NewValidation(userRes.Err())
	}
	user := userRes.Value()

	if err := uc.users.Save(ctx, user); err != nil {
		// the existence check above races with concurrent registrations;
		// the unique constraint is authoritative
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperror.NewUserAlreadyExists("Email already exists")
		}
		return nil, err
	}

	result, err := issueTokens(uc.tokens, user)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.WithFields(logrus.Fields{
			"user_id": user.ID().String(),
			"email":   user.Email().String(),
		}).Info("user registered")
	}
	return result, nil
}

func issueTokens(tokens AuthTokenService, user *entity.User) (*AuthResult, error) {
	payload := TokenPayload{
		UserID: user.ID().String(),
		Email:  user.Email().String(),
	}

	access, err := tokens.GenerateAccessToken(payload)
	if err != nil {
		return nil, err
	}
	refresh, err := tokens.GenerateRefreshToken(payload)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         viewOf(user),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func viewOf(user *entity.User) UserView {
	return UserView{
		ID:        user.ID().String(),
		Name:      user.Name(),
		Email:     user.Email().String(),
		CreatedAt: user.CreatedAt(),
	}
}
