package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hr-records/internal/model"
	"hr-records/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.Response{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := model.Response{Success: false, Message: "Unexpected server error"}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Message = apiErr.Message
		body.Errors = apiErr.Fields
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusConflict
		body.Message = "User already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Message = "Invalid Username and password"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		body.Message = "Invalid or expired token"
	case errors.Is(err, model.ErrEmployeeNotFound):
		status = http.StatusNotFound
		body.Message = "Employee not found"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Message = "User not found"
	case errors.Is(err, model.ErrAttachmentType):
		status = http.StatusBadRequest
		body.Message = "Only JPG, JPEG, PNG images are allowed"
	case errors.Is(err, model.ErrAttachmentTooLarge):
		status = http.StatusBadRequest
		body.Message = "Profile image exceeds the allowed size"
	default:
		// Keep unclassified errors visible in the logs; the caller only
		// sees the generic body.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, body)
}

func writeValidation(w http.ResponseWriter, fields []model.FieldError) {
	writeError(w, apierror.Validation(fields))
}
