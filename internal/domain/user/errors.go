package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermission  = errors.New("insufficient permission")
	ErrInvalidActivationToken  = errors.New("invalid or expired activation token")
	ErrActivationTokenConsumed = errors.New("activation token already used")
)
