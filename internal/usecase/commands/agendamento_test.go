//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"ifuut-api/internal/domain/agendamento"
	"ifuut-api/internal/domain/quadra"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/shared"
	"ifuut-api/tests/common/httptest"
	sharedmock "ifuut-api/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type agendamentoDeps struct {
	tx      *txHarness
	images  *sharedmock.MockImageStorage
	events  *sharedmock.MockEventPublisher
	counts  *sharedmock.MockCountsInvalidator
	metrics *sharedmock.MockMetrics
	uc      commands.AgendamentoCommands
}

func newAgendamentoDeps(t *testing.T) *agendamentoDeps {
	ctrl := gomock.NewController(t)
	d := &agendamentoDeps{
		tx:      newTxHarness(ctrl),
		images:  sharedmock.NewMockImageStorage(ctrl),
		events:  sharedmock.NewMockEventPublisher(ctrl),
		counts:  sharedmock.NewMockCountsInvalidator(ctrl),
		metrics: sharedmock.NewMockMetrics(ctrl),
	}
	d.uc = commands.NewAgendamentoCommands(d.tx.uow, d.images, d.events, d.counts, d.metrics, clock.NewFixedClock(fixedTime))
	return d
}

func uploadOf(name string, content []byte) *shared.Upload {
	return &shared.Upload{
		Filename: name,
		Size:     int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func existingQuadra() *quadra.Quadra {
	return quadra.Reconstruct(1, quadra.Details{Nome: "Arena Central"}, 99)
}

func existingAgendamento(t *testing.T, id, usuarioID int64, comprovante *string) *agendamento.Agendamento {
	t.Helper()
	data, err := agendamento.ParseDate("2026-11-20")
	require.NoError(t, err)
	hora, err := agendamento.ParseHora("19:00")
	require.NoError(t, err)
	slot, err := agendamento.NewSlot(data, hora, nil)
	require.NoError(t, err)
	payment, err := agendamento.NewPayment("pix", comprovante)
	require.NoError(t, err)
	return agendamento.Reconstruct(id, usuarioID, 1, slot, payment, fixedTime, false)
}

func TestAgendamentoCreate(t *testing.T) {
	t.Run("books for the caller and announces the booking", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		d.tx.quadras.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingQuadra(), nil)
		d.tx.agendamentos.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *agendamento.Agendamento) (int64, error) {
				assert.Equal(t, member.UserID, a.UsuarioID())
				assert.False(t, a.Confirmado())
				assert.Equal(t, "19:00:00", a.Slot().Hora().String())
				return 30, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), shared.TopicAgendamentoCreated, gomock.AssignableToTypeOf(shared.AgendamentoCreatedEvent{})).
			DoAndReturn(func(_ context.Context, _ string, payload any) error {
				ev := payload.(shared.AgendamentoCreatedEvent)
				assert.Equal(t, int64(30), ev.AgendamentoID)
				assert.Equal(t, "2026-11-20", ev.Data)
				return nil
			})
		d.metrics.EXPECT().AgendamentoCreated()
		d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

		id, err := d.uc.Create(context.Background(), member, reqdto.AgendamentoRequest{
			QuadraID: 1, Data: "2026-11-20", Hora: "19:00",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(30), id)
	})

	t.Run("stores the comprovante before inserting", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		var savedKey string
		d.images.EXPECT().Save(gomock.Any(), gomock.Any(), "image/png", gomock.Any(), int64(len(httptest.PNG))).
			DoAndReturn(func(_ context.Context, key, _ string, body io.Reader, _ int64) error {
				savedKey = key
				b, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.Equal(t, httptest.PNG, b)
				return nil
			})
		d.tx.quadras.EXPECT().FindByID(gomock.Any(), int64(1)).Return(existingQuadra(), nil)
		d.tx.agendamentos.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *agendamento.Agendamento) (int64, error) {
				require.NotNil(t, a.Payment().Comprovante())
				assert.Equal(t, savedKey, *a.Payment().Comprovante())
				return 31, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.metrics.EXPECT().AgendamentoCreated()
		d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

		_, err := d.uc.Create(context.Background(), member, reqdto.AgendamentoRequest{
			QuadraID: 1, Data: "2026-11-20", Hora: "19:00", Comprovante: uploadOf("Recibo.PNG", httptest.PNG),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(savedKey, "comprovantes/2026/10/"), savedKey)
		assert.True(t, strings.HasSuffix(savedKey, ".png"), savedKey)
	})

	t.Run("unknown quadra removes the stored comprovante", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		var savedKey string
		d.images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, _ io.Reader, _ int64) error {
				savedKey = key
				return nil
			})
		d.tx.quadras.EXPECT().FindByID(gomock.Any(), int64(404)).Return(nil, infra.WrapRepoErr("quadra", nil, infra.KindNotFound))
		d.images.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				assert.Equal(t, savedKey, key)
				return nil
			})

		_, err := d.uc.Create(context.Background(), member, reqdto.AgendamentoRequest{
			QuadraID: 404, Data: "2026-11-20", Hora: "19:00", Comprovante: uploadOf("r.png", httptest.PNG),
		})

		fe, ok := errs.AsFieldError(err)
		require.True(t, ok, "got %v", err)
		assert.Contains(t, fe.Fields, "quadra_id")
	})

	t.Run("non-image comprovante is rejected", func(t *testing.T) {
		d := newAgendamentoDeps(t)

		_, err := d.uc.Create(context.Background(), member, reqdto.AgendamentoRequest{
			QuadraID: 1, Data: "2026-11-20", Hora: "19:00", Comprovante: uploadOf("r.txt", []byte("plain text")),
		})

		assert.True(t, errs.Is(err, errs.ErrInvalidUpload))
	})

	t.Run("invalid slot fields are reported per field", func(t *testing.T) {
		tests := []struct {
			name  string
			req   reqdto.AgendamentoRequest
			field string
		}{
			{name: "date format", req: reqdto.AgendamentoRequest{QuadraID: 1, Data: "20/11/2026", Hora: "19:00"}, field: "data"},
			{name: "time format", req: reqdto.AgendamentoRequest{QuadraID: 1, Data: "2026-11-20", Hora: "7pm"}, field: "hora"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := newAgendamentoDeps(t)

				_, err := d.uc.Create(context.Background(), member, tt.req)

				fe, ok := errs.AsFieldError(err)
				require.True(t, ok, "got %v", err)
				assert.Contains(t, fe.Fields, tt.field)
			})
		}
	})

	t.Run("anonymous callers are refused", func(t *testing.T) {
		d := newAgendamentoDeps(t)

		_, err := d.uc.Create(context.Background(), nil, reqdto.AgendamentoRequest{QuadraID: 1, Data: "2026-11-20", Hora: "19:00"})

		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})
}

func TestAgendamentoUpdate(t *testing.T) {
	t.Run("another user's booking is not found", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		d.tx.agendamentos.EXPECT().FindByID(gomock.Any(), int64(3)).Return(existingAgendamento(t, 3, 77, nil), nil)

		hora := "20:00"
		err := d.uc.Update(context.Background(), member, 3, reqdto.PatchAgendamentoRequest{Hora: &hora})

		assert.True(t, errs.Is(err, errs.ErrAgendamentoNotFound))
	})

	t.Run("a new comprovante replaces and removes the old file", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		old := "comprovantes/2026/09/old.png"
		d.images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.tx.agendamentos.EXPECT().FindByID(gomock.Any(), int64(3)).Return(existingAgendamento(t, 3, member.UserID, &old), nil)
		d.tx.agendamentos.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *agendamento.Agendamento) error {
				require.NotNil(t, a.Payment().Comprovante())
				assert.NotEqual(t, old, *a.Payment().Comprovante())
				assert.Equal(t, "pix", a.Payment().Tipo())
				return nil
			})
		d.images.EXPECT().Delete(gomock.Any(), old).Return(nil)

		err := d.uc.Update(context.Background(), member, 3, reqdto.PatchAgendamentoRequest{
			Comprovante: uploadOf("novo.png", httptest.PNG),
		})

		require.NoError(t, err)
	})

	t.Run("staff may move any booking", func(t *testing.T) {
		d := newAgendamentoDeps(t)
		d.tx.agendamentos.EXPECT().FindByID(gomock.Any(), int64(3)).Return(existingAgendamento(t, 3, 77, nil), nil)
		d.tx.quadras.EXPECT().FindByID(gomock.Any(), int64(2)).Return(existingQuadra(), nil)
		d.tx.agendamentos.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *agendamento.Agendamento) error {
				assert.Equal(t, int64(2), a.QuadraID())
				assert.Equal(t, int64(77), a.UsuarioID(), "ownership never changes")
				return nil
			})

		quadraID := int64(2)
		err := d.uc.Update(context.Background(), staff, 3, reqdto.PatchAgendamentoRequest{QuadraID: &quadraID})

		require.NoError(t, err)
	})
}

func TestAgendamentoDelete(t *testing.T) {
	d := newAgendamentoDeps(t)
	d.tx.agendamentos.EXPECT().FindByID(gomock.Any(), int64(3)).Return(existingAgendamento(t, 3, member.UserID, nil), nil)
	d.tx.agendamentos.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

	require.NoError(t, d.uc.Delete(context.Background(), member, 3))
}
