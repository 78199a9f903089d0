package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/errs"
)

// BindAndValidate binds the request into payload, sanitizes and validates it.
//
// A body that cannot be decoded is a 400 carrying the binder's message.
// Rule failures are a 422 listing every failing field, one entry per field.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	if s, ok := payload.(Sanitizable); ok {
		s.Sanitize()
	}

	if err := payload.Validate(); err != nil {
		var messages map[string]string
		if mp, ok := payload.(MessageProvider); ok {
			messages = mp.ValidationMessages()
		}

		fieldErrors, ok := extractValidationErrors(err, messages)
		if !ok {
			return errs.ValidationError(err)
		}
		return errs.NewUnprocessableEntityError("Validation failed", fieldErrors)
	}

	return nil
}

func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	return err.Error()
}

// extractValidationErrors converts err into field errors. ok is false when
// err is neither a validator nor a custom validation error.
func extractValidationErrors(err error, messages map[string]string) (fieldErrors []errs.FieldError, ok bool) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: e.Field, Message: e.Message})
		}
		return fieldErrors, true
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	for _, fe := range validationErrors {
		msg, found := messages[fe.Field()+"."+fe.Tag()]
		if !found {
			msg = defaultMessage(fe)
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:   fe.Field(),
			Message: msg,
		})
	}

	return fieldErrors, true
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	case "email":
		return "must be a valid email address"

	case "uuid":
		return "must be a valid UUID"

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
}
