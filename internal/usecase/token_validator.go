package usecase

import (
	"context"

	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/pkg/jwt"
	"ifuut-api/internal/usecase/queries"
)

var (
	ErrInvalidToken  = errs.New("invalid token")
	ErrInactiveToken = errs.New("token belongs to an inactive user")
)

// Principal is the authenticated user attached to a request.
type Principal struct {
	UserID   int64
	Username string
	Tipo     string
	IsStaff  bool
}

// TokenValidator resolves both credential schemes accepted by the API: "Bearer <jwt>" and "Token <key>".
type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (*Principal, error)
	ValidateAPIToken(ctx context.Context, key string) (*Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, users queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		users:      users,
	}
}

func (t *tokenValidatorImpl) ValidateAccessToken(ctx context.Context, token string) (*Principal, error) {
	claims, err := t.jwtService.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return nil, ErrInvalidToken
	}

	u, err := t.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	return principalOf(u)
}

func (t *tokenValidatorImpl) ValidateAPIToken(ctx context.Context, key string) (*Principal, error) {
	u, err := t.users.FindByAPIToken(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}
	return principalOf(u)
}

func principalOf(u *queries.UserView) (*Principal, error) {
	if !u.IsActive {
		return nil, ErrInactiveToken
	}
	return &Principal{
		UserID:   u.ID,
		Username: u.Username,
		Tipo:     u.Tipo,
		IsStaff:  u.IsStaff,
	}, nil
}
