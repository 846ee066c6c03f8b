package errs

import (
	"net/http"
)

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400. code overrides the default BAD_REQUEST
// when non-nil; fieldErrors become the `errors` list.
func NewBadRequestError(message string, code *string, fieldErrors []FieldError) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	var rendered []string
	for _, fe := range fieldErrors {
		rendered = append(rendered, fe.String())
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  rendered,
	}
}

// NewNotFoundError creates a 404.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusTooManyRequests),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a generic 500 that reveals nothing about
// the cause.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// NewStoreError creates a 500 for a failed store call. message says which
// operation failed and detail carries the store's own diagnostic.
func NewStoreError(message, code, detail string, cause error) *HTTPError {
	if code == "" {
		code = statusCode(http.StatusInternalServerError)
	}

	return &HTTPError{
		Code:    code,
		Message: message,
		Status:  http.StatusInternalServerError,
		Detail:  detail,
		cause:   cause,
	}
}

// ValidationError wraps a generic validation error into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
