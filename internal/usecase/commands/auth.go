package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	"ifuut-api/internal/domain/auth"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/pkg/jwt"
	"ifuut-api/internal/usecase/queries"
	"ifuut-api/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

// apiKeyBytes yields the 40 hex characters stored in api_tokens.key.
const apiKeyBytes = 20

type LoginResult struct {
	UserID    int64
	IsStaff   bool
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	// RefreshToken issues a new access token; the refresh token itself is not rotated.
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	// ObtainAPIToken returns the user's persistent API key, creating it on first use.
	ObtainAPIToken(ctx context.Context, req reqdto.LoginRequest) (string, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     PasswordHasher
	clock      clock.Clock
	newAPIKey  func() (string, error)
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, hasher PasswordHasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
		newAPIKey:  generateAPIKey,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.jwtService.GenerateAccessToken(userView.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userView.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.touchLastLogin(ctx, userView.ID)

	return &LoginResult{
		UserID:  userView.ID,
		IsStaff: userView.IsStaff,
		TokenPair: &TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return "", errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return "", ErrTokenValidation
	}

	// The account may have been deactivated since the refresh token was issued
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return "", ErrUserNotFound
	}

	if !userView.IsActive {
		return "", ErrUserInactive
	}

	accessToken, err := a.jwtService.GenerateAccessToken(claims.UserID)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}
	return accessToken, nil
}

func (a *authCommandsImpl) ObtainAPIToken(ctx context.Context, req reqdto.LoginRequest) (string, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return "", errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", err
	}

	candidate, err := a.newAPIKey()
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	var key string
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, derr := tx.APITokens().GetOrCreate(ctx, userView.ID, candidate, a.clock.Now())
		if derr != nil {
			return derr
		}
		key = stored
		return nil
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return key, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.UserView, error) {
	userView, hashedPassword, err := a.readStore.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		// Same error as a password mismatch so usernames cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return userView, nil
}

func (a *authCommandsImpl) touchLastLogin(ctx context.Context, userID int64) {
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}
}

func generateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
