package response

import (
	"time"

	"ifuut-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ImageResponse struct {
	ID         int64     `json:"id"`
	Image      string    `json:"image"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type SubVenueResponse struct {
	ID                     int64           `json:"id"`
	Nome                   string          `json:"nome"`
	Tipo                   string          `json:"tipo"`
	Capacidade             *int32          `json:"capacidade"`
	SurfaceType            string          `json:"surface_type"`
	PileHeightMM           *int32          `json:"pile_height_mm"`
	InfillType             string          `json:"infill_type"`
	InfillDepthMM          *int32          `json:"infill_depth_mm"`
	ShockpadPresent        bool            `json:"shockpad_present"`
	LastReplacementDate    *string         `json:"last_replacement_date" copier:"-"`
	MaintenanceFrequency   string          `json:"maintenance_frequency"`
	SurfaceConditionRating *int32          `json:"surface_condition_rating"`
	Certifications         string          `json:"certifications"`
	Notes                  string          `json:"notes"`
	Images                 []ImageResponse `json:"images" copier:"-"`
}

type OwnerRequestResponse struct {
	ID              int64              `json:"id"`
	User            string             `json:"user"`
	BusinessName    string             `json:"business_name"`
	BusinessAddress string             `json:"business_address"`
	ContactPhone    string             `json:"contact_phone"`
	ContactEmail    string             `json:"contact_email"`
	Description     string             `json:"description"`
	CreatedAt       time.Time          `json:"created_at"`
	Status          string             `json:"status"`
	AdminNotes      string             `json:"admin_notes"`
	Quadras         []SubVenueResponse `json:"quadras" copier:"-"`
	Images          []ImageResponse    `json:"images" copier:"-"`
}

func FromOwnerRequestView(v *queries.OwnerRequestView) *OwnerRequestResponse {
	res := &OwnerRequestResponse{}
	_ = copier.Copy(res, v)
	res.User = v.UserDisplay()
	res.Images = fromImages(v.Images)
	res.Quadras = make([]SubVenueResponse, len(v.Quadras))
	for i := range v.Quadras {
		sv := &v.Quadras[i]
		_ = copier.Copy(&res.Quadras[i], sv)
		if sv.LastReplacementDate != nil {
			d := sv.LastReplacementDate.Format(time.DateOnly)
			res.Quadras[i].LastReplacementDate = &d
		}
		res.Quadras[i].Images = fromImages(sv.Images)
	}
	return res
}

func FromOwnerRequestList(items []*queries.OwnerRequestView) []*OwnerRequestResponse {
	res := make([]*OwnerRequestResponse, len(items))
	for i, it := range items {
		res[i] = FromOwnerRequestView(it)
	}
	return res
}

func fromImages(images []queries.ImageView) []ImageResponse {
	res := make([]ImageResponse, len(images))
	for i, img := range images {
		res[i] = ImageResponse{ID: img.ID, Image: img.URL, UploadedAt: img.UploadedAt}
	}
	return res
}
