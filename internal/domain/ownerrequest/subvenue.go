package ownerrequest

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"ifuut-api/internal/domain/quadra"
)

var (
	ErrSubVenueNomeRequired = errors.New("nome is required")
	ErrSubVenueFieldTooLong = errors.New("sub-venue field exceeds its maximum length")
	ErrNegativeMeasure      = errors.New("capacidade and measurements must not be negative")
)

const (
	MaxSubVenueNomeLength      = 255
	MaxSubVenueTipoLength      = 80
	MaxInfillTypeLength        = 120
	MaxMaintenanceFrequencyLen = 120
	MaxCertificationsLength    = 255
)

// TurfSpec holds the synthetic-turf survey attached to a proposed venue.
type TurfSpec struct {
	SurfaceType            Surface
	PileHeightMM           *int32
	InfillType             string
	InfillDepthMM          *int32
	ShockpadPresent        bool
	LastReplacementDate    *time.Time
	MaintenanceFrequency   string
	SurfaceConditionRating *int32
	Certifications         string
}

type SubVenueInput struct {
	Nome       string
	Tipo       string
	Capacidade *int32
	Turf       TurfSpec
	Notes      string
}

// SubVenue is a venue proposed inside an owner request.
type SubVenue struct {
	id         int64
	nome       string
	tipo       string
	capacidade *int32
	turf       TurfSpec
	notes      string
	images     []Image
}

func NewSubVenue(in SubVenueInput) (*SubVenue, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return nil, ErrSubVenueNomeRequired
	}
	if tooLong(nome, MaxSubVenueNomeLength) ||
		tooLong(in.Tipo, MaxSubVenueTipoLength) ||
		tooLong(in.Turf.InfillType, MaxInfillTypeLength) ||
		tooLong(in.Turf.MaintenanceFrequency, MaxMaintenanceFrequencyLen) ||
		tooLong(in.Turf.Certifications, MaxCertificationsLength) {
		return nil, ErrSubVenueFieldTooLong
	}
	for _, v := range []*int32{in.Capacidade, in.Turf.PileHeightMM, in.Turf.InfillDepthMM, in.Turf.SurfaceConditionRating} {
		if v != nil && *v < 0 {
			return nil, ErrNegativeMeasure
		}
	}
	surface, err := NewSurface(in.Turf.SurfaceType.String())
	if err != nil {
		return nil, err
	}
	turf := in.Turf
	turf.SurfaceType = surface
	return &SubVenue{
		nome:       nome,
		tipo:       strings.TrimSpace(in.Tipo),
		capacidade: in.Capacidade,
		turf:       turf,
		notes:      in.Notes,
	}, nil
}

func ReconstructSubVenue(id int64, in SubVenueInput, images []Image) *SubVenue {
	return &SubVenue{
		id:         id,
		nome:       in.Nome,
		tipo:       in.Tipo,
		capacidade: in.Capacidade,
		turf:       in.Turf,
		notes:      in.Notes,
		images:     images,
	}
}

// ToQuadra materializes the proposal as a real venue owned by donoID. Business addresses may be
// longer than a venue address, so endereco is cut to quadra.MaxEnderecoLength runes.
func (s *SubVenue) ToQuadra(donoID int64, endereco string) (*quadra.Quadra, error) {
	return quadra.NewQuadra(quadra.Details{
		Nome:       s.nome,
		Endereco:   truncateRunes(strings.TrimSpace(endereco), quadra.MaxEnderecoLength),
		Descricao:  s.notes,
		Tipo:       s.tipo,
		Capacidade: s.capacidade,
	}, donoID)
}

func truncateRunes(v string, n int) string {
	if utf8.RuneCountInString(v) <= n {
		return v
	}
	return string([]rune(v)[:n])
}

func (s *SubVenue) SetID(id int64) { s.id = id }

func (s *SubVenue) ID() int64          { return s.id }
func (s *SubVenue) Nome() string       { return s.nome }
func (s *SubVenue) Tipo() string       { return s.tipo }
func (s *SubVenue) Capacidade() *int32 { return s.capacidade }
func (s *SubVenue) Turf() TurfSpec     { return s.turf }
func (s *SubVenue) Notes() string      { return s.notes }
func (s *SubVenue) Images() []Image    { return s.images }

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
