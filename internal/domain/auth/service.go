package auth

import "context"

// Service defines authentication operations
type Service interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleID, email string) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ActivateAccount(ctx context.Context, req ActivateAccountRequest) error
	Session(ctx context.Context) (SessionResponse, error)
}
