package errs

import "strings"

// FieldError is a single field-level validation failure.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Action is an optional instruction for the client, e.g. a redirect target.
type Action struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// HTTPError is the error type every handler returns.
//
// It serializes directly to the JSON error body:
//   - Code: machine-friendly code (e.g. "CONFLICT", "COMMON_CATEGORY_ALREADY_EXISTS")
//   - Message: human-friendly message, safe to show to the client
//   - Status: HTTP status code
//   - Override: the client may display Message as-is
//   - Errors: per-field validation errors
//   - Action: optional client instruction
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
	Action *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. Only the type is
// compared, so errors.Is(err, &HTTPError{}) means "is any HTTP error".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
