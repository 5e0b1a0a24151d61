//go:build unit || e2e

package builder

import (
	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/pkg/ptr"
)

type OwnerRequestBuilder struct {
	ID         int64
	UserID     int64
	Business   ownerrequest.BusinessInfo
	Status     ownerrequest.Status
	AdminNotes string
	SubVenues  []ownerrequest.SubVenueInput
}

func NewOwnerRequestBuilder() *OwnerRequestBuilder {
	return &OwnerRequestBuilder{
		ID:     50,
		UserID: 1,
		Business: ownerrequest.BusinessInfo{
			Name:         "Arena Silva",
			Address:      "Av. Brasil, 2000",
			ContactPhone: "+55 11 99999-0000",
			ContactEmail: "contato@arenasilva.com.br",
			Description:  "Complexo com duas quadras",
		},
		Status: ownerrequest.StatusPending,
		SubVenues: []ownerrequest.SubVenueInput{
			NewSubVenueInput("Quadra 1"),
			NewSubVenueInput("Quadra 2"),
		},
	}
}

func NewSubVenueInput(nome string) ownerrequest.SubVenueInput {
	return ownerrequest.SubVenueInput{
		Nome:       nome,
		Tipo:       "society",
		Capacidade: ptr.To(int32(12)),
		Turf: ownerrequest.TurfSpec{
			SurfaceType:  ownerrequest.SurfaceSynthetic,
			PileHeightMM: ptr.To(int32(50)),
			InfillType:   "borracha",
		},
		Notes: "Coberta",
	}
}

func (b *OwnerRequestBuilder) With(mutate func(*OwnerRequestBuilder)) *OwnerRequestBuilder {
	mutate(b)
	return b
}

func (b *OwnerRequestBuilder) BuildDomain() (*ownerrequest.OwnerRequest, error) {
	subVenues := make([]*ownerrequest.SubVenue, 0, len(b.SubVenues))
	for _, in := range b.SubVenues {
		sv, err := ownerrequest.NewSubVenue(in)
		if err != nil {
			return nil, err
		}
		subVenues = append(subVenues, sv)
	}
	return ownerrequest.NewOwnerRequest(b.UserID, b.Business, subVenues, fixedNow)
}

func (b *OwnerRequestBuilder) BuildPersisted() *ownerrequest.OwnerRequest {
	subVenues := make([]*ownerrequest.SubVenue, 0, len(b.SubVenues))
	for i, in := range b.SubVenues {
		subVenues = append(subVenues, ownerrequest.ReconstructSubVenue(int64(i+1), in, nil))
	}
	return ownerrequest.Reconstruct(b.ID, b.UserID, b.Business, b.Status, b.AdminNotes, fixedNow, subVenues, nil)
}

func (b *OwnerRequestBuilder) WithUser(id int64) *OwnerRequestBuilder {
	b.UserID = id
	return b
}

func (b *OwnerRequestBuilder) WithStatus(status ownerrequest.Status) *OwnerRequestBuilder {
	b.Status = status
	return b
}

func (b *OwnerRequestBuilder) WithBusinessName(name string) *OwnerRequestBuilder {
	b.Business.Name = name
	return b
}

func (b *OwnerRequestBuilder) WithBusinessAddress(address string) *OwnerRequestBuilder {
	b.Business.Address = address
	return b
}

func (b *OwnerRequestBuilder) WithContactEmail(email string) *OwnerRequestBuilder {
	b.Business.ContactEmail = email
	return b
}

func (b *OwnerRequestBuilder) WithSubVenues(in ...ownerrequest.SubVenueInput) *OwnerRequestBuilder {
	b.SubVenues = in
	return b
}
