package shared

import (
	"context"
	"io"
)

// Actor is the authenticated caller. A nil *Actor means an anonymous request.
type Actor struct {
	UserID  int64
	IsStaff bool
}

func (a *Actor) IsAnonymous() bool { return a == nil }

type ImageStorage interface {
	Save(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

const (
	TopicOwnerRequestApproved = "owner_request.approved"
	TopicAgendamentoCreated   = "agendamento.created"
)

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// CountsInvalidator drops cached dashboard counters after writes that change them.
type CountsInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Metrics interface {
	AdminActionApplied(model, action string, processed, skipped int)
	OwnerRequestSubmitted(images int)
	AgendamentoCreated()
}
