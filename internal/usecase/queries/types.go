package queries

import (
	"time"

	"ifuut-api/internal/domain/user"
)

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Tipo        string     `json:"tipo"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	IsActive    bool       `json:"is_active"`
	DateJoined  time.Time  `json:"date_joined"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

func (u UserView) Display() string {
	return user.DisplayName(u.Username, user.Role(u.Tipo))
}

type QuadraView struct {
	ID           int64  `json:"id"`
	Nome         string `json:"nome"`
	Endereco     string `json:"endereco"`
	Descricao    string `json:"descricao"`
	Tipo         string `json:"tipo"`
	Capacidade   *int32 `json:"capacidade"`
	DonoID       int64  `json:"dono_id"`
	DonoUsername string `json:"dono_username"`
	DonoTipo     string `json:"dono_tipo"`
}

func (q QuadraView) DonoDisplay() string {
	return user.DisplayName(q.DonoUsername, user.Role(q.DonoTipo))
}

type AgendamentoView struct {
	ID              int64      `json:"id"`
	UsuarioID       int64      `json:"usuario_id"`
	UsuarioUsername string     `json:"usuario_username"`
	UsuarioTipo     string     `json:"usuario_tipo"`
	Quadra          QuadraView `json:"quadra"`
	Data            string     `json:"data"`
	Hora            string     `json:"hora"`
	DuracaoMinutos  int32      `json:"duracao_minutos"`
	ComprovanteKey  *string    `json:"-"`
	ComprovanteURL  *string    `json:"comprovante"`
	TipoPagamento   string     `json:"tipo_pagamento"`
	Confirmado      bool       `json:"confirmado"`
	CriadoEm        time.Time  `json:"criado_em"`
}

func (a AgendamentoView) UsuarioDisplay() string {
	return user.DisplayName(a.UsuarioUsername, user.Role(a.UsuarioTipo))
}

type ImageView struct {
	ID         int64     `json:"id"`
	Key        string    `json:"-"`
	URL        string    `json:"image"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type SubVenueView struct {
	ID                     int64       `json:"id"`
	Nome                   string      `json:"nome"`
	Tipo                   string      `json:"tipo"`
	Capacidade             *int32      `json:"capacidade"`
	SurfaceType            string      `json:"surface_type"`
	PileHeightMM           *int32      `json:"pile_height_mm"`
	InfillType             string      `json:"infill_type"`
	InfillDepthMM          *int32      `json:"infill_depth_mm"`
	ShockpadPresent        bool        `json:"shockpad_present"`
	LastReplacementDate    *time.Time  `json:"last_replacement_date"`
	MaintenanceFrequency   string      `json:"maintenance_frequency"`
	SurfaceConditionRating *int32      `json:"surface_condition_rating"`
	Certifications         string      `json:"certifications"`
	Notes                  string      `json:"notes"`
	Images                 []ImageView `json:"images"`
}

type OwnerRequestView struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"user_id"`
	Username        string         `json:"username"`
	UserTipo        string         `json:"user_tipo"`
	BusinessName    string         `json:"business_name"`
	BusinessAddress string         `json:"business_address"`
	ContactPhone    string         `json:"contact_phone"`
	ContactEmail    string         `json:"contact_email"`
	Description     string         `json:"description"`
	CreatedAt       time.Time      `json:"created_at"`
	Status          string         `json:"status"`
	AdminNotes      string         `json:"admin_notes"`
	Quadras         []SubVenueView `json:"quadras"`
	Images          []ImageView    `json:"images"`
}

func (o OwnerRequestView) UserDisplay() string {
	return user.DisplayName(o.Username, user.Role(o.UserTipo))
}

// CountsView is the dashboard aggregate. JSON keys are part of the public API.
type CountsView struct {
	Quadras               int64 `json:"quadras"`
	Agendamentos          int64 `json:"agendamentos"`
	Solicitacoes          int64 `json:"solicitacoes"`
	Usuarios              int64 `json:"usuarios"`
	SolicitacoesPendentes int64 `json:"solicitacoes_pendentes"`
}

type UserFilter struct {
	Search   string
	Tipo     string
	IsStaff  *bool
	IsActive *bool
	Limit    int
}

type QuadraFilter struct {
	Search  string
	Tipo    string
	OrderBy string // "id" (default) or "nome"
	Limit   int
}

type AgendamentoFilter struct {
	UsuarioID  *int64
	Confirmado *bool
	Data       string
	Search     string
	Limit      int
}

type OwnerRequestFilter struct {
	UserID *int64
	Status string
	Search string
	Limit  int
}

// CountTarget names one dashboard counter.
type CountTarget string

const (
	CountQuadras               CountTarget = "quadras"
	CountAgendamentos          CountTarget = "agendamentos"
	CountSolicitacoes          CountTarget = "solicitacoes"
	CountUsuarios              CountTarget = "usuarios"
	CountSolicitacoesPendentes CountTarget = "solicitacoes_pendentes"
)

func AllCountTargets() []CountTarget {
	return []CountTarget{CountQuadras, CountAgendamentos, CountSolicitacoes, CountUsuarios, CountSolicitacoesPendentes}
}
