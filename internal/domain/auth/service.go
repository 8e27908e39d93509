package auth

import "context"

// AuthService defines login/session business logic. Refresh tokens travel
// in an HTTP-only cookie; the handler passes the raw cookie value through.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (resp LoginResponse, refreshToken string, refreshExpiresAt int64, err error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
