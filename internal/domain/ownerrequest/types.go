package ownerrequest

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid owner request status")
	ErrTransitionDenied  = errors.New("status transition not allowed")
	ErrInvalidSurface    = errors.New("surface_type must be synthetic or natural")
	ErrImageOwnerMissing = errors.New("image must belong to a request or a sub-venue")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pendente"
	case StatusPaid:
		return "Pago"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Rejeitado"
	}
	return string(s)
}

// CanTransitionTo encodes pending -> paid -> approved, with rejection allowed from pending or paid.
func (s Status) CanTransitionTo(next Status) bool {
	switch next {
	case StatusPaid:
		return s == StatusPending
	case StatusApproved, StatusRejected:
		return s == StatusPending || s == StatusPaid
	}
	return false
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusPaid, StatusApproved, StatusRejected}
}

type Surface string

const (
	SurfaceSynthetic Surface = "synthetic"
	SurfaceNatural   Surface = "natural"
)

func NewSurface(s string) (Surface, error) {
	switch Surface(s) {
	case "":
		return SurfaceSynthetic, nil
	case SurfaceSynthetic, SurfaceNatural:
		return Surface(s), nil
	}
	return "", ErrInvalidSurface
}

func (s Surface) String() string { return string(s) }

func (s Surface) Display() string {
	if s == SurfaceNatural {
		return "Natural"
	}
	return "Sintética"
}
