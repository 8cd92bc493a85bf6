package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/auth"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/claims"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/jwt"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepository      user.Repository
	tokenRepository     postgresql.TokenRepository
	jwtService          jwt.Service
	notificationService notification.Service
}

func NewAuthService(
	userRepository user.Repository,
	tokenRepository postgresql.TokenRepository,
	jwtService jwt.Service,
	notificationService notification.Service,
) auth.Service {
	return &AuthServiceImpl{
		userRepository:      userRepository,
		tokenRepository:     tokenRepository,
		jwtService:          jwtService,
		notificationService: notificationService,
	}
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepository.GetByEmail(ctx, req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountNotActivated
	}
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// LoginWithGoogle implements auth.Service. The Google identity must already
// be linked to an account, either by google id or by matching email.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleID, email string) (auth.TokenResponse, error) {
	u, err := s.userRepository.GetByGoogleID(ctx, googleID)
	if errors.Is(err, user.ErrUserNotFound) {
		u, err = s.userRepository.GetByEmail(ctx, email)
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleAccountNotLinked
		}
	}
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if !u.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountNotActivated
	}

	return s.issueTokens(ctx, u)
}

// Refresh implements auth.Service. Refresh tokens rotate: the presented
// token is revoked and a new pair is issued.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if tokenType, ok := token.Get("type"); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	rawUserID, ok := token.Get("user_id")
	if !ok {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := rawUserID.(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	valid, err := s.tokenRepository.IsRefreshTokenValid(ctx, userID, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !valid {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.tokenRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, err
	}

	return s.issueTokens(ctx, u)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenRepository.RevokeRefreshToken(ctx, refreshToken)
}

// ActivateAccount implements auth.Service. The activation token is single
// use; consuming it sets the password and flips the account active.
func (s *AuthServiceImpl) ActivateAccount(ctx context.Context, req auth.ActivateAccountRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := s.tokenRepository.ConsumeActivationToken(ctx, req.Token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepository.Activate(ctx, userID, string(hash)); err != nil {
		return err
	}

	notifyErr := s.notificationService.Notify(ctx, notification.Notification{
		RecipientID: userID,
		Type:        notification.TypeAccountActivated,
		Title:       "Account activated",
		Message:     "Your account is active. You can now file overtime requests.",
	})
	if notifyErr != nil {
		slog.Warn("failed to send activation notification", slog.Any("error", notifyErr))
	}
	return nil
}

// Session implements auth.Service.
func (s *AuthServiceImpl) Session(ctx context.Context) (auth.SessionResponse, error) {
	actor, err := claims.FromContext(ctx)
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		UserID:     actor.UserID,
		Email:      actor.Email,
		Role:       string(actor.Role),
		EmployeeID: actor.EmployeeID,
		CompanyID:  actor.CompanyID,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.CompanyID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepository.StoreRefreshToken(ctx, u.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}
