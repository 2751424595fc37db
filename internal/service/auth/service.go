package auth

import (
	"context"
	"fmt"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/transwerk/personal-backend-go/internal/domain/auth"
	"github.com/transwerk/personal-backend-go/internal/domain/user"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
	pkgjwt "github.com/transwerk/personal-backend-go/internal/pkg/jwt"
	"github.com/transwerk/personal-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	pkgjwt.Service
	postgresql.JWTRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService pkgjwt.Service, jwtRepository postgresql.JWTRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
		JWTRepository:  jwtRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == auth.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData, session)
}

// Refresh implements auth.AuthService. The presented refresh token is
// verified, checked against the revocation table, revoked, and a fresh pair
// is issued (rotation).
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userID, err := a.verifyRefreshToken(ctx, refreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == auth.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return a.issueTokens(ctx, userData, session)
}

// Logout implements auth.AuthService. An already revoked or unknown token is
// not an error; logout is idempotent.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.JWTRepository.RevokeRefreshToken(ctx, refreshToken)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Email)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// verifyRefreshToken validates signature, expiry, token type and revocation
// state, and returns the subject user id.
func (a *AuthServiceImpl) verifyRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	token, err := a.Service.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if err := jwt.Validate(token); err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return "", auth.ErrInvalidToken
	}
	userIDStr, ok := userID.(string)
	if !ok || userIDStr == "" {
		return "", auth.ErrInvalidToken
	}

	revoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if revoked {
		return "", auth.ErrRefreshTokenRevoked
	}

	return userIDStr, nil
}
