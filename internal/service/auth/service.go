package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/orbit-hr/hr-backend-go/internal/domain/auth"
	"github.com/orbit-hr/hr-backend-go/internal/domain/user"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Name, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		User: auth.UserSummary{
			ID:         userData.ID,
			Name:       userData.Name,
			Role:       string(userData.Role),
			EmployeeID: userData.EmployeeID,
		},
	}, refreshToken, refreshExpiresAt, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Name, userData.EmployeeID, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService. Revoking an already revoked or
// unknown token is a no-op.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}
