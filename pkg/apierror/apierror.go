package apierror

import (
	"fmt"

	"hr-records/internal/model"
)

type APIError struct {
	Code       string
	Message    string
	Fields     []model.FieldError
	HTTPStatus int
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%d field errors)", e.Code, e.Message, len(e.Fields))
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

// Validation builds the 400 carrying every accumulated field violation.
func Validation(fields []model.FieldError) *APIError {
	return &APIError{
		Code:       "VALIDATION_FAILED",
		Message:    "validation failed",
		Fields:     fields,
		HTTPStatus: 400,
	}
}
