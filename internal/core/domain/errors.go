package domain

import "errors"

var (
	ErrValidation           = errors.New("invalid input")
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrTokenNotFound        = errors.New("token not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenRevoked         = errors.New("token revoked")
	ErrDuplicateUser        = errors.New("username or email already taken")
	ErrDeliveryFailure      = errors.New("notification delivery failed")
)
