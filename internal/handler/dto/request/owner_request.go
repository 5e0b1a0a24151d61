package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

var errLastReplacementDate = errors.New("last_replacement_date must use the YYYY-MM-DD format")

type SubVenueRequest struct {
	Nome                   string  `json:"nome"`
	Tipo                   string  `json:"tipo"`
	Capacidade             *int32  `json:"capacidade"`
	SurfaceType            string  `json:"surface_type"`
	PileHeightMM           *int32  `json:"pile_height_mm"`
	InfillType             string  `json:"infill_type"`
	InfillDepthMM          *int32  `json:"infill_depth_mm"`
	ShockpadPresent        bool    `json:"shockpad_present"`
	LastReplacementDate    *string `json:"last_replacement_date"`
	MaintenanceFrequency   string  `json:"maintenance_frequency"`
	SurfaceConditionRating *int32  `json:"surface_condition_rating"`
	Certifications         string  `json:"certifications"`
	Notes                  string  `json:"notes"`
}

func (r SubVenueRequest) ToDomain() (*ownerrequest.SubVenue, error) {
	surface, err := ownerrequest.NewSurface(r.SurfaceType)
	if err != nil {
		return nil, err
	}
	var replaced *time.Time
	if r.LastReplacementDate != nil && *r.LastReplacementDate != "" {
		t, err := time.Parse(time.DateOnly, *r.LastReplacementDate)
		if err != nil {
			return nil, errLastReplacementDate
		}
		replaced = &t
	}
	return ownerrequest.NewSubVenue(ownerrequest.SubVenueInput{
		Nome:       r.Nome,
		Tipo:       r.Tipo,
		Capacidade: r.Capacidade,
		Notes:      r.Notes,
		Turf: ownerrequest.TurfSpec{
			SurfaceType:            surface,
			PileHeightMM:           r.PileHeightMM,
			InfillType:             r.InfillType,
			InfillDepthMM:          r.InfillDepthMM,
			ShockpadPresent:        r.ShockpadPresent,
			LastReplacementDate:    replaced,
			MaintenanceFrequency:   r.MaintenanceFrequency,
			SurfaceConditionRating: r.SurfaceConditionRating,
			Certifications:         r.Certifications,
		},
	})
}

// SubVenueList decodes either a JSON array or a string holding one, the form multipart clients send.
// A string that is not a valid array is dropped, leaving the list empty.
type SubVenueList []SubVenueRequest

func (l *SubVenueList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*l = ParseSubVenues(raw)
		return nil
	}
	var items []SubVenueRequest
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// ParseSubVenues decodes the multipart "quadras" field.
func ParseSubVenues(raw string) SubVenueList {
	if raw == "" {
		return nil
	}
	var items []SubVenueRequest
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("dropping malformed quadras field", "error", err.Error())
		return nil
	}
	return items
}

type OwnerRequestRequest struct {
	BusinessName    string       `json:"business_name" form:"business_name" binding:"required,max=255"`
	BusinessAddress string       `json:"business_address" form:"business_address" binding:"max=400"`
	ContactPhone    string       `json:"contact_phone" form:"contact_phone" binding:"max=50"`
	ContactEmail    string       `json:"contact_email" form:"contact_email" binding:"omitempty,email,max=254"`
	Description     string       `json:"description" form:"description"`
	Quadras         SubVenueList `json:"quadras" form:"-"`

	Images []shared.Upload `json:"-" form:"-"`
	// QuadraImages maps a sub-venue index to the files sent as quadra_<index>_images.
	QuadraImages map[int][]shared.Upload `json:"-" form:"-"`
}

func (r *OwnerRequestRequest) ToDomain(userID int64, now time.Time) (*ownerrequest.OwnerRequest, error) {
	subVenues := make([]*ownerrequest.SubVenue, 0, len(r.Quadras))
	for i, q := range r.Quadras {
		sv, err := q.ToDomain()
		if err != nil {
			return nil, errs.Field("quadras", fmt.Sprintf("item %d: %s", i, err.Error()))
		}
		subVenues = append(subVenues, sv)
	}
	for idx := range r.QuadraImages {
		if idx < 0 || idx >= len(subVenues) {
			return nil, errs.Field(fmt.Sprintf("quadra_%d_images", idx), "no sub-venue at this index")
		}
	}

	req, err := ownerrequest.NewOwnerRequest(userID, ownerrequest.BusinessInfo{
		Name:         r.BusinessName,
		Address:      r.BusinessAddress,
		ContactPhone: r.ContactPhone,
		ContactEmail: r.ContactEmail,
		Description:  r.Description,
	}, subVenues, now)
	if err != nil {
		return nil, errs.Field(businessField(err), err.Error())
	}
	return req, nil
}

func businessField(err error) string {
	switch {
	case errors.Is(err, ownerrequest.ErrBusinessNameRequired):
		return "business_name"
	case errors.Is(err, ownerrequest.ErrInvalidContactEmail):
		return "contact_email"
	default:
		return "non_field_errors"
	}
}

type AdminActionRequest struct {
	Action string  `json:"action" form:"action" binding:"required"`
	IDs    []int64 `json:"ids" form:"ids" binding:"required,min=1"`
}

type AdminNotesRequest struct {
	AdminNotes string `json:"admin_notes" form:"admin_notes"`
}
