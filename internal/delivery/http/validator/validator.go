// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the credential-specific rules used by the
// request DTOs.
package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// requestValidator wraps a configured *validator.Validate.
type requestValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator installed on the HTTP server.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("password", validatePassword)

	return &requestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *requestValidator) Validate(i any) error {
	return errors.WithStack(rv.validate.Struct(i))
}

// validateUsername enforces the account handle format: 3 to 20 characters,
// letters, digits and underscores only.
func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// validatePassword requires at least one upper case letter, one lower case
// letter and one digit. The minimum length is expressed separately with the
// `min` tag so its failure reads as a length problem.
func validatePassword(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}
