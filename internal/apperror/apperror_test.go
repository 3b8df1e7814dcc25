package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypesCarryCodes(t *testing.T) {
	cases := []struct {
		err  error
		code string
		msg  string
	}{
		{NewValidation("Invalid email format"), CodeValidation, "Invalid email format"},
		{NewUserAlreadyExists("Email already exists"), CodeAlreadyExists, "Email already exists"},
		{NewUnauthorized("Invalid credentials"), CodeUnauthorized, "Invalid credentials"},
		{NewForbidden("not yours"), CodeForbidden, "not yours"},
		{NewNotFound("user not found"), CodeNotFound, "user not found"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.msg, tc.err.Error())

		var appErr *ApplicationError
		switch e := tc.err.(type) {
		case *ValidationError:
			appErr = &e.ApplicationError
		case *UserAlreadyExistsError:
			appErr = &e.ApplicationError
		case *UnauthorizedError:
			appErr = &e.ApplicationError
		case *ForbiddenError:
			appErr = &e.ApplicationError
		case *NotFoundError:
			appErr = &e.ApplicationError
		}
		require.NotNil(t, appErr)
		assert.Equal(t, tc.code, appErr.Code)
	}
}

func TestErrorsAsDistinguishesCategories(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", NewUserAlreadyExists("Email already exists"))

	var conflict *UserAlreadyExistsError
	require.True(t, errors.As(wrapped, &conflict))
	assert.Equal(t, CodeAlreadyExists, conflict.Code)

	var validation *ValidationError
	assert.False(t, errors.As(wrapped, &validation))
}
