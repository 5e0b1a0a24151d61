package commands

import (
	"context"
	"fmt"

	"ifuut-api/internal/domain/agendamento"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/infra/storage"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/pkg/ptr"
	"ifuut-api/internal/usecase/shared"
)

var ErrAgendamentoNotFound = errs.Mark(errs.New("agendamento not found"), errs.ErrAgendamentoNotFound)

type AgendamentoCommands interface {
	// Create books a slot for the caller; the caller is always the owner.
	Create(ctx context.Context, actor *shared.Actor, req reqdto.AgendamentoRequest) (int64, error)
	Update(ctx context.Context, actor *shared.Actor, id int64, req reqdto.PatchAgendamentoRequest) error
	Delete(ctx context.Context, actor *shared.Actor, id int64) error
}

type agendamentoCommandsImpl struct {
	uow     shared.UnitOfWork
	images  shared.ImageStorage
	events  shared.EventPublisher
	counts  shared.CountsInvalidator
	metrics shared.Metrics
	clock   clock.Clock
}

func NewAgendamentoCommands(
	uow shared.UnitOfWork,
	images shared.ImageStorage,
	events shared.EventPublisher,
	counts shared.CountsInvalidator,
	metrics shared.Metrics,
	clk clock.Clock,
) AgendamentoCommands {
	return &agendamentoCommandsImpl{
		uow:     uow,
		images:  images,
		events:  events,
		counts:  counts,
		metrics: metrics,
		clock:   clk,
	}
}

func (uc *agendamentoCommandsImpl) Create(ctx context.Context, actor *shared.Actor, req reqdto.AgendamentoRequest) (int64, error) {
	if err := requireActor(actor); err != nil {
		return 0, err
	}

	slot, err := req.Slot()
	if err != nil {
		return 0, err
	}
	now := uc.clock.Now()

	var stored []string
	var comprovante *string
	if req.Comprovante != nil {
		key, err := storeImage(ctx, uc.images, storage.PrefixComprovantes, "comprovante", *req.Comprovante, now)
		if err != nil {
			return 0, err
		}
		stored = append(stored, key)
		comprovante = &key
	}

	payment, err := agendamento.NewPayment(ptr.Deref(req.TipoPagamento), comprovante)
	if err != nil {
		discardImages(ctx, uc.images, stored)
		return 0, errs.Field("tipo_pagamento", err.Error())
	}

	ag, err := agendamento.NewAgendamento(actor.UserID, req.QuadraID, slot, payment, now)
	if err != nil {
		discardImages(ctx, uc.images, stored)
		return 0, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensureQuadraExists(ctx, tx, req.QuadraID); derr != nil {
			return derr
		}
		created, derr := tx.Agendamentos().Create(ctx, ag)
		if derr != nil {
			return derr
		}
		id = created
		return nil
	})
	if err != nil {
		discardImages(ctx, uc.images, stored)
		return 0, err
	}

	publish(ctx, uc.events, shared.TopicAgendamentoCreated, shared.AgendamentoCreatedEvent{
		AgendamentoID:  id,
		UsuarioID:      actor.UserID,
		QuadraID:       req.QuadraID,
		Data:           slot.Data().String(),
		Hora:           slot.Hora().String(),
		DuracaoMinutos: slot.DurationMinutes(),
		CriadoEm:       now,
	})
	uc.metrics.AgendamentoCreated()
	invalidateCounts(ctx, uc.counts)
	return id, nil
}

func (uc *agendamentoCommandsImpl) Update(ctx context.Context, actor *shared.Actor, id int64, req reqdto.PatchAgendamentoRequest) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	var newKey *string
	if req.Comprovante != nil {
		key, err := storeImage(ctx, uc.images, storage.PrefixComprovantes, "comprovante", *req.Comprovante, uc.clock.Now())
		if err != nil {
			return err
		}
		newKey = &key
	}

	var replaced *string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ag, derr := tx.Agendamentos().FindByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, ErrAgendamentoNotFound)
		}
		// rows outside the caller's scope are reported as missing
		if !ag.VisibleTo(actor.UserID, actor.IsStaff) {
			return ErrAgendamentoNotFound
		}

		quadraID, slot, payment, derr := req.Apply(ag)
		if derr != nil {
			return derr
		}
		if quadraID != ag.QuadraID() {
			if derr = ensureQuadraExists(ctx, tx, quadraID); derr != nil {
				return derr
			}
		}
		if newKey != nil {
			replaced = payment.Comprovante()
			payment, derr = agendamento.NewPayment(payment.Tipo(), newKey)
			if derr != nil {
				return errs.Field("tipo_pagamento", derr.Error())
			}
		}

		if derr = ag.Reschedule(quadraID, slot, payment); derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		return tx.Agendamentos().Update(ctx, ag)
	})
	if err != nil {
		if newKey != nil {
			discardImages(ctx, uc.images, []string{*newKey})
		}
		return err
	}

	if replaced != nil {
		discardImages(ctx, uc.images, []string{*replaced})
	}
	return nil
}

func (uc *agendamentoCommandsImpl) Delete(ctx context.Context, actor *shared.Actor, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ag, derr := tx.Agendamentos().FindByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, ErrAgendamentoNotFound)
		}
		if !ag.VisibleTo(actor.UserID, actor.IsStaff) {
			return ErrAgendamentoNotFound
		}
		return tx.Agendamentos().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	invalidateCounts(ctx, uc.counts)
	return nil
}

func ensureQuadraExists(ctx context.Context, tx shared.Tx, quadraID int64) error {
	_, err := tx.Quadras().FindByID(ctx, quadraID)
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Field("quadra_id", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", quadraID))
	}
	return err
}
