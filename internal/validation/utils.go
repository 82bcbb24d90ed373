// Package validation binds request data and validates it.
//
// Request types carry `validate` tags for go-playground/validator and
// implement Validatable. Failures become a 400 errs.HTTPError with
// per-field details.
package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance.
//
// The "notblank" tag rejects whitespace-only strings, which "required"
// lets through.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}
