// Package apperror defines the typed failure categories of the application
// layer. Each error carries a stable machine-readable code next to its human
// message; the transport boundary maps the category to a status code.
package apperror

// Stable error codes surfaced to clients.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeAlreadyExists = "E-AUTH-001"
	CodeUnauthorized  = "E-AUTH-002"
	CodeForbidden     = "E-AUTH-003"
	CodeNotFound      = "NOT_FOUND"
)

// ApplicationError is the base of all expected application failures.
type ApplicationError struct {
	Code    string
	Message string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// ValidationError marks malformed or out-of-bounds input (400).
type ValidationError struct {
	ApplicationError
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{ApplicationError{Code: CodeValidation, Message: msg}}
}

// UserAlreadyExistsError marks an email uniqueness conflict (409).
type UserAlreadyExistsError struct {
	ApplicationError
}

func NewUserAlreadyExists(msg string) *UserAlreadyExistsError {
	return &UserAlreadyExistsError{ApplicationError{Code: CodeAlreadyExists, Message: msg}}
}

// UnauthorizedError marks a failed identity check (401).
type UnauthorizedError struct {
	ApplicationError
}

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{ApplicationError{Code: CodeUnauthorized, Message: msg}}
}

// ForbiddenError marks an authenticated but disallowed action (403).
type ForbiddenError struct {
	ApplicationError
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{ApplicationError{Code: CodeForbidden, Message: msg}}
}

// NotFoundError marks a missing resource (404).
type NotFoundError struct {
	ApplicationError
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{ApplicationError{Code: CodeNotFound, Message: msg}}
}
