//go:build unit

package ownerrequest_test

import (
	"strings"
	"testing"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/pkg/ptr"
	"ifuut-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRequest(t *testing.T) {
	t.Run("new requests start pending", func(t *testing.T) {
		r, err := builder.NewOwnerRequestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, ownerrequest.StatusPending, r.Status())
		assert.Len(t, r.SubVenues(), 2)
		assert.Equal(t, ownerrequest.SurfaceSynthetic, r.SubVenues()[0].Turf().SurfaceType)
	})

	cases := []struct {
		name   string
		mutate func(*builder.OwnerRequestBuilder)
		errIs  error
	}{
		{name: "no sub-venues", mutate: func(b *builder.OwnerRequestBuilder) { b.WithSubVenues() }},
		{name: "no contact email", mutate: func(b *builder.OwnerRequestBuilder) { b.WithContactEmail("") }},
		{name: "business_name required", mutate: func(b *builder.OwnerRequestBuilder) { b.WithBusinessName(" ") }, errIs: ownerrequest.ErrBusinessNameRequired},
		{name: "business_name too long", mutate: func(b *builder.OwnerRequestBuilder) { b.WithBusinessName(strings.Repeat("b", 256)) }, errIs: ownerrequest.ErrBusinessFieldTooLong},
		{name: "invalid contact email", mutate: func(b *builder.OwnerRequestBuilder) { b.WithContactEmail("not-an-email") }, errIs: ownerrequest.ErrInvalidContactEmail},
		{name: "requester required", mutate: func(b *builder.OwnerRequestBuilder) { b.WithUser(0) }, errIs: ownerrequest.ErrRequesterRequired},
		{
			name: "sub-venue nome required",
			mutate: func(b *builder.OwnerRequestBuilder) {
				b.WithSubVenues(builder.NewSubVenueInput(""))
			},
			errIs: ownerrequest.ErrSubVenueNomeRequired,
		},
		{
			name: "invalid surface type",
			mutate: func(b *builder.OwnerRequestBuilder) {
				in := builder.NewSubVenueInput("Q")
				in.Turf.SurfaceType = "concrete"
				b.WithSubVenues(in)
			},
			errIs: ownerrequest.ErrInvalidSurface,
		},
		{
			name: "negative pile height",
			mutate: func(b *builder.OwnerRequestBuilder) {
				in := builder.NewSubVenueInput("Q")
				in.Turf.PileHeightMM = ptr.To(int32(-5))
				b.WithSubVenues(in)
			},
			errIs: ownerrequest.ErrNegativeMeasure,
		},
		{
			name: "empty surface type defaults to synthetic",
			mutate: func(b *builder.OwnerRequestBuilder) {
				in := builder.NewSubVenueInput("Q")
				in.Turf.SurfaceType = ""
				b.WithSubVenues(in)
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := builder.NewOwnerRequestBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, r)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			require.Nil(t, r)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to ownerrequest.Status
		want     bool
	}{
		{ownerrequest.StatusPending, ownerrequest.StatusPaid, true},
		{ownerrequest.StatusPending, ownerrequest.StatusApproved, true},
		{ownerrequest.StatusPending, ownerrequest.StatusRejected, true},
		{ownerrequest.StatusPaid, ownerrequest.StatusApproved, true},
		{ownerrequest.StatusPaid, ownerrequest.StatusRejected, true},
		{ownerrequest.StatusPaid, ownerrequest.StatusPaid, false},
		{ownerrequest.StatusPaid, ownerrequest.StatusPending, false},
		{ownerrequest.StatusApproved, ownerrequest.StatusRejected, false},
		{ownerrequest.StatusApproved, ownerrequest.StatusApproved, false},
		{ownerrequest.StatusRejected, ownerrequest.StatusApproved, false},
		{ownerrequest.StatusRejected, ownerrequest.StatusPaid, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOwnerRequest_Approve(t *testing.T) {
	t.Run("creates one venue per sub-venue owned by the requester", func(t *testing.T) {
		r := builder.NewOwnerRequestBuilder().WithUser(42).WithStatus(ownerrequest.StatusPaid).BuildPersisted()

		plan, err := r.Approve()
		require.NoError(t, err)

		assert.Equal(t, ownerrequest.StatusApproved, r.Status())
		assert.Equal(t, int64(42), plan.OwnerUserID)
		require.Len(t, plan.Quadras, 2)
		for i, q := range plan.Quadras {
			sv := r.SubVenues()[i]
			assert.Equal(t, sv.Nome(), q.Nome())
			assert.Equal(t, sv.Tipo(), q.Tipo())
			assert.Equal(t, sv.Capacidade(), q.Capacidade())
			assert.Equal(t, sv.Notes(), q.Descricao())
			assert.Equal(t, "Av. Brasil, 2000", q.Endereco())
			assert.Equal(t, int64(42), q.DonoID())
		}
	})

	t.Run("long business address is cut to the venue limit", func(t *testing.T) {
		address := strings.Repeat("á", 300)
		r, err := builder.NewOwnerRequestBuilder().WithBusinessAddress(address).BuildDomain()
		require.NoError(t, err)

		plan, err := r.Approve()
		require.NoError(t, err)

		assert.Equal(t, ownerrequest.StatusApproved, r.Status())
		require.Len(t, plan.Quadras, 2)
		for _, q := range plan.Quadras {
			assert.Equal(t, strings.Repeat("á", quadra.MaxEnderecoLength), q.Endereco())
		}
	})

	t.Run("request without sub-venues still approves", func(t *testing.T) {
		r := builder.NewOwnerRequestBuilder().WithSubVenues().BuildPersisted()

		plan, err := r.Approve()
		require.NoError(t, err)
		assert.Empty(t, plan.Quadras)
	})

	t.Run("already approved is denied", func(t *testing.T) {
		r := builder.NewOwnerRequestBuilder().WithStatus(ownerrequest.StatusApproved).BuildPersisted()

		plan, err := r.Approve()
		require.ErrorIs(t, err, ownerrequest.ErrTransitionDenied)
		assert.Nil(t, plan)
	})

	t.Run("rejected is denied", func(t *testing.T) {
		r := builder.NewOwnerRequestBuilder().WithStatus(ownerrequest.StatusRejected).BuildPersisted()

		_, err := r.Approve()
		require.ErrorIs(t, err, ownerrequest.ErrTransitionDenied)
		assert.Equal(t, ownerrequest.StatusRejected, r.Status())
	})
}

func TestOwnerRequest_MarkPaidAndReject(t *testing.T) {
	r := builder.NewOwnerRequestBuilder().BuildPersisted()

	require.NoError(t, r.MarkPaid())
	assert.Equal(t, ownerrequest.StatusPaid, r.Status())
	require.ErrorIs(t, r.MarkPaid(), ownerrequest.ErrTransitionDenied)

	require.NoError(t, r.Reject())
	assert.Equal(t, ownerrequest.StatusRejected, r.Status())
	require.ErrorIs(t, r.Reject(), ownerrequest.ErrTransitionDenied)
}
