// Package validation binds, sanitizes and validates request payloads.
//
// Rules are declared with go-playground/validator struct tags. Failures are
// converted into errs.FieldError entries named after the payload's JSON
// field names, so clients see the same names they sent.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validatable is implemented by request payloads that validate themselves,
// usually by calling Struct on the receiver.
type Validatable interface {
	Validate() error
}

// Sanitizable payloads are normalized after binding and before validation.
type Sanitizable interface {
	Sanitize()
}

// MessageProvider payloads supply their own messages keyed "field.tag",
// e.g. "name.min" for the min rule on the field named "name".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// CustomValidationError represents a rule that struct tags cannot express.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. It reports fields by their json
// tag name and is safe for concurrent use.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
	})
	return validate
}

// Struct validates v with the shared validator.
func Struct(v any) error {
	return Validator().Struct(v)
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
