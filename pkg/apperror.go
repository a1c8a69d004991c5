package pkg

import "fmt"

// AppError is the application-level error carried from use cases up to the
// HTTP layer. Message is always user-safe: raw upstream error text stays in
// Err (logged, never rendered).
//
// Codes form a closed set:
//   - VALIDATION            malformed or missing input
//   - NOT_FOUND             the referenced record does not exist
//   - UNAUTHORIZED          no or invalid staff session / credentials
//   - UPSTREAM_UNAVAILABLE  the remote data service could not be reached
//   - INTERNAL              everything else
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

const (
	CodeValidation          = "VALIDATION"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON shape used by API-style endpoints.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message}
}
