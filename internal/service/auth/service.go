package auth

import (
	"context"
	"strings"

	"github.com/csi515/beautyhub-backend-go/internal/config"
	"github.com/csi515/beautyhub-backend-go/internal/domain/auth"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl authenticates against the single configured owner
// credential. The backend is single-tenant, so there is no user table.
type AuthServiceImpl struct {
	ownerEmail        string
	ownerPasswordHash string
	jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		ownerEmail:        cfg.OwnerEmail,
		ownerPasswordHash: cfg.OwnerPasswordHash,
		Service:           jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if !strings.EqualFold(req.Email, a.ownerEmail) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.ownerPasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var resp auth.LoginResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(a.ownerEmail)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(a.ownerEmail)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return resp, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	email, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	if !strings.EqualFold(email, a.ownerEmail) {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	var resp auth.RefreshResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(a.ownerEmail)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	return resp, nil
}
