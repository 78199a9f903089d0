// Package errs defines the error shapes returned to API clients.
//
// Every client-visible failure is an *HTTPError. Handlers and services
// return one, the global error handler renders it as JSON with the status
// it carries.
//
//   - Field-level validation errors for form and JSON payloads.
//   - A stable machine-readable code next to the human message.
//   - An optional error detail for server failures.
package errs

import "strings"

// FieldError represents a single failing field.
//
//	{ "field": "emailID", "message": "Invalid email address!" }
type FieldError struct {
	// Field is the wire name of the field (JSON/form tag).
	Field string `json:"field"`

	// Message is the human-readable reason.
	Message string `json:"message"`
}

// HTTPError is the error type every handler returns for client-visible failures.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "EMAIL_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status code, not serialized (it is the response status).
//   - Override: the message is safe to show to end users as-is.
//   - Errors: per-field validation errors.
//   - Detail: underlying error text, only set for server failures.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"-"`
	Override bool         `json:"-"`
	Errors   []FieldError `json:"errors,omitempty"`
	Detail   string       `json:"error,omitempty"`
}

// Error returns the client message so logging the error shows what the client saw.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does not compare Code or Status, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetail returns a copy of e carrying the underlying error text.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
