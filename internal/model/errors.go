package model

import "errors"

var (
	// Identity errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Presented identically for unknown identifier and wrong password so
	// callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors
	ErrInvalidToken = errors.New("invalid or expired token")

	// Employee errors
	ErrEmployeeNotFound = errors.New("employee not found")

	// Attachment errors
	ErrAttachmentType     = errors.New("attachment type not allowed")
	ErrAttachmentTooLarge = errors.New("attachment exceeds size limit")
)
