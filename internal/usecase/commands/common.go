package commands

import (
	"context"
	"log/slog"

	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var (
	ErrAuthenticationRequired = errs.Mark(errs.New("authentication required"), errs.ErrUnauthorized)
	ErrStaffOnly              = errs.Mark(errs.New("staff privileges required"), errs.ErrStaffRequired)
)

func requireActor(actor *shared.Actor) error {
	if actor.IsAnonymous() {
		return ErrAuthenticationRequired
	}
	return nil
}

func requireStaff(actor *shared.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsStaff {
		return ErrStaffOnly
	}
	return nil
}

// notFoundAs swaps a repository NOT_FOUND for the use-case sentinel and marks the rest as database failures.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

func invalidateCounts(ctx context.Context, counts shared.CountsInvalidator) {
	if err := counts.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate admin counters", "error", err.Error())
	}
}

func publish(ctx context.Context, events shared.EventPublisher, topic string, payload any) {
	if err := events.Publish(ctx, topic, payload); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err.Error())
	}
}
