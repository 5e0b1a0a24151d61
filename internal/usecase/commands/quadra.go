package commands

import (
	"context"

	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var (
	ErrQuadraNotFound     = errs.Mark(errs.New("quadra not found"), errs.ErrQuadraNotFound)
	ErrQuadraNotManageable = errs.Mark(errs.New("only the owner or staff may change this quadra"), errs.ErrForbidden)
)

type QuadraCommands interface {
	Create(ctx context.Context, actor *shared.Actor, req reqdto.QuadraRequest) (int64, error)
	// Update applies a partial change; PUT callers pass QuadraRequest.ToPatch().
	Update(ctx context.Context, actor *shared.Actor, id int64, req reqdto.PatchQuadraRequest) error
	Delete(ctx context.Context, actor *shared.Actor, id int64) error
}

type quadraCommandsImpl struct {
	uow    shared.UnitOfWork
	counts shared.CountsInvalidator
}

func NewQuadraCommands(uow shared.UnitOfWork, counts shared.CountsInvalidator) QuadraCommands {
	return &quadraCommandsImpl{uow: uow, counts: counts}
}

func (uc *quadraCommandsImpl) Create(ctx context.Context, actor *shared.Actor, req reqdto.QuadraRequest) (int64, error) {
	if err := requireActor(actor); err != nil {
		return 0, err
	}

	q, err := req.ToDomain(actor.UserID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Quadras().Create(ctx, q)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	invalidateCounts(ctx, uc.counts)
	return id, nil
}

func (uc *quadraCommandsImpl) Update(ctx context.Context, actor *shared.Actor, id int64, req reqdto.PatchQuadraRequest) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Quadras().FindByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, ErrQuadraNotFound)
		}
		if !q.CanBeManagedBy(actor.UserID, actor.IsStaff) {
			return ErrQuadraNotManageable
		}

		if derr = q.Update(req.Apply(q.Details())); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		// only staff may hand a venue to someone else
		if req.DonoID != nil && actor.IsStaff {
			if derr = q.TransferTo(*req.DonoID); derr != nil {
				return errs.Mark(derr, errs.ErrDomainValidation)
			}
		}

		return tx.Quadras().Update(ctx, q)
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Field("dono_id", "user does not exist")
	}
	return err
}

func (uc *quadraCommandsImpl) Delete(ctx context.Context, actor *shared.Actor, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		q, derr := tx.Quadras().FindByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, ErrQuadraNotFound)
		}
		if !q.CanBeManagedBy(actor.UserID, actor.IsStaff) {
			return ErrQuadraNotManageable
		}
		return tx.Quadras().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	// cascades to the venue's agendamentos
	invalidateCounts(ctx, uc.counts)
	return nil
}
