package commands

import (
	"context"
	"errors"

	"ifuut-api/internal/domain/user"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

const msgUsernameTaken = "A user with that username already exists."

type UserCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	clock  clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, clock: clk}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error) {
	if _, err := req.Role(); err != nil {
		return 0, errs.Field("tipo", err.Error())
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return 0, errs.Field("password", err.Error())
	}

	hash, err := uc.hasher.Hash(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "hash password")
	}

	u, err := req.ToDomain(hash, uc.clock.Now())
	if err != nil {
		return 0, errs.Field(registrationField(err), err.Error())
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Users().Create(ctx, u)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Field("username", msgUsernameTaken)
		}
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func registrationField(err error) string {
	switch {
	case errors.Is(err, user.ErrInvalidEmail):
		return "email"
	case errors.Is(err, user.ErrFirstNameTooLong):
		return "first_name"
	case errors.Is(err, user.ErrLastNameTooLong):
		return "last_name"
	case errors.Is(err, user.ErrInvalidRole), errors.Is(err, user.ErrRoleNotSelfAssignable):
		return "tipo"
	default:
		return "username"
	}
}
