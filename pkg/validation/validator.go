// Package validation configures the validator.v10 engine behind Gin's
// binding and converts its errors into stable per-field messages.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding: JSON tag names
// in error output plus the aliases this API binds with.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// minimum password length; strength rules live in the domain
		v.RegisterAlias("pwd", "min=8")
	}
}

// ToDetails converts binding errors into a map[field]message for the error
// envelope's details field.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = fieldMessage(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min", "pwd":
		return "must be at least " + minParam(fe) + " characters"
	case "max":
		return "must not exceed " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func minParam(fe validator.FieldError) string {
	if fe.Tag() == "pwd" {
		return "8"
	}
	return fe.Param()
}
