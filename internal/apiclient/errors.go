package apiclient

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every 404 APIError so callers can branch
// with errors.Is without inspecting status codes.
var ErrNotFound = errors.New("record not found")

// APIError is the normalized failure for both transports: the mock
// layer constructs it directly, the HTTP layer fills it from the
// response envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == 404 {
		return ErrNotFound
	}
	return nil
}

func notFoundError(resource string) *APIError {
	return &APIError{
		Code:    "NOT_FOUND",
		Message: resource + " not found",
		Status:  404,
	}
}

func validationError(problems map[string]string) *APIError {
	return &APIError{
		Code:    "VALIDATION_ERROR",
		Message: "Validation failed",
		Status:  422,
		Details: problems,
	}
}

func badRequestError(message string) *APIError {
	return &APIError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  400,
	}
}

func unauthorizedError(message string) *APIError {
	return &APIError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  401,
	}
}
