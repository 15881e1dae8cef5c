package auth

import (
	"context"
)

// AuthService authenticates the shop owner against the configured credential.
type AuthService interface {
	// Login verifies the owner credential and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
}
