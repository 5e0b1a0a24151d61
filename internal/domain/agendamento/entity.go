package agendamento

import (
	"errors"
	"time"
)

var (
	ErrUsuarioRequired = errors.New("usuario is required")
	ErrQuadraRequired  = errors.New("quadra is required")
)

// Agendamento is a reservation of a venue. The booking user is fixed at creation.
type Agendamento struct {
	id         int64
	usuarioID  int64
	quadraID   int64
	slot       Slot
	payment    Payment
	criadoEm   time.Time
	confirmado bool
}

func NewAgendamento(usuarioID, quadraID int64, slot Slot, payment Payment, now time.Time) (*Agendamento, error) {
	if usuarioID <= 0 {
		return nil, ErrUsuarioRequired
	}
	if quadraID <= 0 {
		return nil, ErrQuadraRequired
	}
	return &Agendamento{
		usuarioID: usuarioID,
		quadraID:  quadraID,
		slot:      slot,
		payment:   payment,
		criadoEm:  now,
	}, nil
}

func Reconstruct(id, usuarioID, quadraID int64, slot Slot, payment Payment, criadoEm time.Time, confirmado bool) *Agendamento {
	return &Agendamento{
		id:         id,
		usuarioID:  usuarioID,
		quadraID:   quadraID,
		slot:       slot,
		payment:    payment,
		criadoEm:   criadoEm,
		confirmado: confirmado,
	}
}

// Reschedule changes venue, slot and payment. Confirmation is kept; only staff toggle it.
func (a *Agendamento) Reschedule(quadraID int64, slot Slot, payment Payment) error {
	if quadraID <= 0 {
		return ErrQuadraRequired
	}
	a.quadraID = quadraID
	a.slot = slot
	a.payment = payment
	return nil
}

func (a *Agendamento) Confirm()   { a.confirmado = true }
func (a *Agendamento) Unconfirm() { a.confirmado = false }

// VisibleTo reports whether the actor may read or change this reservation.
func (a *Agendamento) VisibleTo(actorID int64, isStaff bool) bool {
	return isStaff || a.usuarioID == actorID
}

func (a *Agendamento) ID() int64           { return a.id }
func (a *Agendamento) UsuarioID() int64    { return a.usuarioID }
func (a *Agendamento) QuadraID() int64     { return a.quadraID }
func (a *Agendamento) Slot() Slot          { return a.slot }
func (a *Agendamento) Payment() Payment    { return a.payment }
func (a *Agendamento) CriadoEm() time.Time { return a.criadoEm }
func (a *Agendamento) Confirmado() bool    { return a.confirmado }
