package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidToken           = errors.New("invalid token")
	ErrTokenExpired           = errors.New("token expired")
	ErrRefreshTokenRevoked    = errors.New("refresh token revoked")
	ErrAccountNotActivated    = errors.New("account is not activated")
	ErrUserNotFound           = errors.New("user not found")
	ErrGoogleAccountNotLinked = errors.New("no account is linked to this google identity")
)
