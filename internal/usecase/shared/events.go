package shared

import "time"

// OwnerRequestApprovedEvent is published on TopicOwnerRequestApproved after the approval commits.
type OwnerRequestApprovedEvent struct {
	OwnerRequestID int64     `json:"owner_request_id"`
	UserID         int64     `json:"user_id"`
	QuadraIDs      []int64   `json:"quadra_ids"`
	ApprovedBy     int64     `json:"approved_by"`
	ApprovedAt     time.Time `json:"approved_at"`
}

type AgendamentoCreatedEvent struct {
	AgendamentoID  int64     `json:"agendamento_id"`
	UsuarioID      int64     `json:"usuario_id"`
	QuadraID       int64     `json:"quadra_id"`
	Data           string    `json:"data"`
	Hora           string    `json:"hora"`
	DuracaoMinutos int32     `json:"duracao_minutos"`
	CriadoEm       time.Time `json:"criado_em"`
}
