package commands

import (
	"context"
	"errors"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/user"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

const (
	ActionMarkPaid  = "mark_paid"
	ActionApprove   = "approve_request"
	ActionReject    = "reject_request"
	ActionConfirm   = "confirm"
	ActionUnconfirm = "unconfirm"

	ModelOwnerRequest = "owner_request"
	ModelAgendamento  = "agendamento"
)

var ErrUnknownAction = errs.Mark(errs.New("unknown action"), errs.ErrDomainValidation)

type SkippedItem struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type ActionResult struct {
	Processed int           `json:"processed"`
	Skipped   []SkippedItem `json:"skipped"`
}

type AdminCommands interface {
	// ApplyOwnerRequestAction runs mark_paid, approve_request or reject_request on each id in its own
	// transaction. Requests whose status does not allow the move are skipped.
	ApplyOwnerRequestAction(ctx context.Context, actor *shared.Actor, action string, ids []int64) (*ActionResult, error)
	ApplyAgendamentoAction(ctx context.Context, actor *shared.Actor, action string, ids []int64) (*ActionResult, error)
	UpdateAdminNotes(ctx context.Context, actor *shared.Actor, id int64, notes string) error
}

type adminCommandsImpl struct {
	uow     shared.UnitOfWork
	events  shared.EventPublisher
	counts  shared.CountsInvalidator
	metrics shared.Metrics
	clock   clock.Clock
}

func NewAdminCommands(
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	counts shared.CountsInvalidator,
	metrics shared.Metrics,
	clk clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		uow:     uow,
		events:  events,
		counts:  counts,
		metrics: metrics,
		clock:   clk,
	}
}

func (uc *adminCommandsImpl) ApplyOwnerRequestAction(ctx context.Context, actor *shared.Actor, action string, ids []int64) (*ActionResult, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var apply func(ctx context.Context, tx shared.Tx, r *ownerrequest.OwnerRequest) (*shared.OwnerRequestApprovedEvent, error)
	switch action {
	case ActionMarkPaid:
		apply = uc.markPaid
	case ActionApprove:
		apply = func(ctx context.Context, tx shared.Tx, r *ownerrequest.OwnerRequest) (*shared.OwnerRequestApprovedEvent, error) {
			return uc.approve(ctx, tx, r, actor.UserID)
		}
	case ActionReject:
		apply = uc.reject
	default:
		return nil, ErrUnknownAction
	}

	result := &ActionResult{Skipped: []SkippedItem{}}
	for _, id := range uniqueIDs(ids) {
		var event *shared.OwnerRequestApprovedEvent
		var skipped *SkippedItem
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			event, skipped = nil, nil

			r, derr := tx.OwnerRequests().LockByID(ctx, id)
			if infra.IsKind(derr, infra.KindNotFound) {
				skipped = &SkippedItem{ID: id, Reason: "not found"}
				return nil
			}
			if derr != nil {
				return derr
			}

			from := r.Status()
			event, derr = apply(ctx, tx, r)
			if errors.Is(derr, ownerrequest.ErrTransitionDenied) {
				skipped = &SkippedItem{ID: id, Status: from.String(), Reason: "cannot move from " + from.Display()}
				return nil
			}
			return derr
		})
		if err != nil {
			uc.finishOwnerRequestAction(ctx, action, result)
			return result, errs.Wrapf(err, "%s on owner request %d", action, id)
		}

		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		result.Processed++
		if event != nil {
			publish(ctx, uc.events, shared.TopicOwnerRequestApproved, event)
		}
	}

	uc.finishOwnerRequestAction(ctx, action, result)
	return result, nil
}

func (uc *adminCommandsImpl) finishOwnerRequestAction(ctx context.Context, action string, result *ActionResult) {
	uc.metrics.AdminActionApplied(ModelOwnerRequest, action, result.Processed, len(result.Skipped))
	if result.Processed > 0 {
		invalidateCounts(ctx, uc.counts)
	}
}

func (uc *adminCommandsImpl) markPaid(ctx context.Context, tx shared.Tx, r *ownerrequest.OwnerRequest) (*shared.OwnerRequestApprovedEvent, error) {
	if err := r.MarkPaid(); err != nil {
		return nil, err
	}
	return nil, tx.OwnerRequests().UpdateStatus(ctx, r.ID(), r.Status())
}

func (uc *adminCommandsImpl) reject(ctx context.Context, tx shared.Tx, r *ownerrequest.OwnerRequest) (*shared.OwnerRequestApprovedEvent, error) {
	if err := r.Reject(); err != nil {
		return nil, err
	}
	return nil, tx.OwnerRequests().UpdateStatus(ctx, r.ID(), r.Status())
}

// approve promotes the requester and creates one venue per sub-venue. The venues stay even if the
// request is rejected later.
func (uc *adminCommandsImpl) approve(ctx context.Context, tx shared.Tx, r *ownerrequest.OwnerRequest, approvedBy int64) (*shared.OwnerRequestApprovedEvent, error) {
	plan, err := r.Approve()
	if err != nil {
		return nil, err
	}
	if err = tx.OwnerRequests().UpdateStatus(ctx, r.ID(), r.Status()); err != nil {
		return nil, err
	}
	if err = tx.Users().UpdateRole(ctx, plan.OwnerUserID, user.RoleAdmin); err != nil {
		return nil, err
	}

	quadraIDs := make([]int64, 0, len(plan.Quadras))
	for _, q := range plan.Quadras {
		id, err := tx.Quadras().Create(ctx, q)
		if err != nil {
			return nil, err
		}
		quadraIDs = append(quadraIDs, id)
	}

	return &shared.OwnerRequestApprovedEvent{
		OwnerRequestID: r.ID(),
		UserID:         plan.OwnerUserID,
		QuadraIDs:      quadraIDs,
		ApprovedBy:     approvedBy,
		ApprovedAt:     uc.clock.Now(),
	}, nil
}

func (uc *adminCommandsImpl) ApplyAgendamentoAction(ctx context.Context, actor *shared.Actor, action string, ids []int64) (*ActionResult, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var confirmed bool
	switch action {
	case ActionConfirm:
		confirmed = true
	case ActionUnconfirm:
		confirmed = false
	default:
		return nil, ErrUnknownAction
	}

	ids = uniqueIDs(ids)
	var updated int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Agendamentos().SetConfirmed(ctx, ids, confirmed)
		if derr != nil {
			return derr
		}
		updated = n
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &ActionResult{Processed: int(updated), Skipped: []SkippedItem{}}
	uc.metrics.AdminActionApplied(ModelAgendamento, action, result.Processed, len(ids)-result.Processed)
	return result, nil
}

func (uc *adminCommandsImpl) UpdateAdminNotes(ctx context.Context, actor *shared.Actor, id int64, notes string) error {
	if err := requireStaff(actor); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.OwnerRequests().UpdateAdminNotes(ctx, id, notes)
	})
	return notFoundAs(err, ErrOwnerRequestNotFound)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
