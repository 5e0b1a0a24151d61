//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"ifuut-api/internal/domain/ownerrequest"
	"ifuut-api/internal/domain/quadra"
	"ifuut-api/internal/domain/user"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	"ifuut-api/internal/usecase/shared"
	sharedmock "ifuut-api/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	staff     = &shared.Actor{UserID: 1, IsStaff: true}
	member    = &shared.Actor{UserID: 2}
	fixedTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
)

// txHarness runs every Within callback against one mocked transaction.
type txHarness struct {
	uow           *sharedmock.MockUnitOfWork
	users         *sharedmock.MockUserRepository
	tokens        *sharedmock.MockAPITokenRepository
	quadras       *sharedmock.MockQuadraRepository
	agendamentos  *sharedmock.MockAgendamentoRepository
	ownerRequests *sharedmock.MockOwnerRequestRepository
}

func newTxHarness(ctrl *gomock.Controller) *txHarness {
	h := &txHarness{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		tokens:        sharedmock.NewMockAPITokenRepository(ctrl),
		quadras:       sharedmock.NewMockQuadraRepository(ctrl),
		agendamentos:  sharedmock.NewMockAgendamentoRepository(ctrl),
		ownerRequests: sharedmock.NewMockOwnerRequestRepository(ctrl),
	}
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().Users().Return(h.users).AnyTimes()
	tx.EXPECT().APITokens().Return(h.tokens).AnyTimes()
	tx.EXPECT().Quadras().Return(h.quadras).AnyTimes()
	tx.EXPECT().Agendamentos().Return(h.agendamentos).AnyTimes()
	tx.EXPECT().OwnerRequests().Return(h.ownerRequests).AnyTimes()
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	return h
}

func ownerRequestWith(t *testing.T, id int64, status ownerrequest.Status, subVenueNames ...string) *ownerrequest.OwnerRequest {
	t.Helper()
	subVenues := make([]*ownerrequest.SubVenue, 0, len(subVenueNames))
	for _, nome := range subVenueNames {
		sv, err := ownerrequest.NewSubVenue(ownerrequest.SubVenueInput{Nome: nome, Tipo: "society"})
		require.NoError(t, err)
		subVenues = append(subVenues, sv)
	}
	return ownerrequest.Reconstruct(id, member.UserID, ownerrequest.BusinessInfo{
		Name:    "Arena do Bairro",
		Address: "Rua A, 10",
	}, status, "", fixedTime, subVenues, nil)
}

func notFound() error {
	return infra.WrapRepoErr("owner request", nil, infra.KindNotFound)
}

type adminDeps struct {
	tx      *txHarness
	events  *sharedmock.MockEventPublisher
	counts  *sharedmock.MockCountsInvalidator
	metrics *sharedmock.MockMetrics
	uc      commands.AdminCommands
}

func newAdminDeps(t *testing.T) *adminDeps {
	ctrl := gomock.NewController(t)
	d := &adminDeps{
		tx:      newTxHarness(ctrl),
		events:  sharedmock.NewMockEventPublisher(ctrl),
		counts:  sharedmock.NewMockCountsInvalidator(ctrl),
		metrics: sharedmock.NewMockMetrics(ctrl),
	}
	d.uc = commands.NewAdminCommands(d.tx.uow, d.events, d.counts, d.metrics, clock.NewFixedClock(fixedTime))
	return d
}

func TestApplyOwnerRequestAction_MarkPaid(t *testing.T) {
	d := newAdminDeps(t)
	ctx := context.Background()

	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(1)).Return(ownerRequestWith(t, 1, ownerrequest.StatusPending), nil)
	d.tx.ownerRequests.EXPECT().UpdateStatus(gomock.Any(), int64(1), ownerrequest.StatusPaid).Return(nil)
	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(2)).Return(ownerRequestWith(t, 2, ownerrequest.StatusApproved), nil)
	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(3)).Return(nil, notFound())
	d.metrics.EXPECT().AdminActionApplied(commands.ModelOwnerRequest, commands.ActionMarkPaid, 1, 2)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

	// duplicated ids are applied once
	result, err := d.uc.ApplyOwnerRequestAction(ctx, staff, commands.ActionMarkPaid, []int64{1, 2, 2, 3})

	require.NoError(t, err)
	want := &commands.ActionResult{
		Processed: 1,
		Skipped: []commands.SkippedItem{
			{ID: 2, Status: "approved", Reason: "cannot move from Aprovado"},
			{ID: 3, Reason: "not found"},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOwnerRequestAction_Approve(t *testing.T) {
	d := newAdminDeps(t)
	ctx := context.Background()

	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(7)).
		Return(ownerRequestWith(t, 7, ownerrequest.StatusPaid, "Campo 1", "Campo 2"), nil)
	d.tx.ownerRequests.EXPECT().UpdateStatus(gomock.Any(), int64(7), ownerrequest.StatusApproved).Return(nil)
	d.tx.users.EXPECT().UpdateRole(gomock.Any(), member.UserID, user.RoleAdmin).Return(nil)

	var created []string
	nextID := int64(10)
	d.tx.quadras.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *quadra.Quadra) (int64, error) {
			assert.Equal(t, member.UserID, q.DonoID())
			assert.Equal(t, "Rua A, 10", q.Details().Endereco)
			created = append(created, q.Details().Nome)
			nextID++
			return nextID - 1, nil
		}).Times(2)

	d.events.EXPECT().Publish(gomock.Any(), shared.TopicOwnerRequestApproved, &shared.OwnerRequestApprovedEvent{
		OwnerRequestID: 7,
		UserID:         member.UserID,
		QuadraIDs:      []int64{10, 11},
		ApprovedBy:     staff.UserID,
		ApprovedAt:     fixedTime,
	}).Return(nil)
	d.metrics.EXPECT().AdminActionApplied(commands.ModelOwnerRequest, commands.ActionApprove, 1, 0)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

	result, err := d.uc.ApplyOwnerRequestAction(ctx, staff, commands.ActionApprove, []int64{7})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, []string{"Campo 1", "Campo 2"}, created)
}

func TestApplyOwnerRequestAction_ApproveWithLongBusinessAddress(t *testing.T) {
	d := newAdminDeps(t)
	ctx := context.Background()

	sv, err := ownerrequest.NewSubVenue(ownerrequest.SubVenueInput{Nome: "Campo 1", Tipo: "society"})
	require.NoError(t, err)
	address := strings.Repeat("a", 300)
	r := ownerrequest.Reconstruct(8, member.UserID, ownerrequest.BusinessInfo{Name: "Arena", Address: address},
		ownerrequest.StatusPending, "", fixedTime, []*ownerrequest.SubVenue{sv}, nil)

	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(8)).Return(r, nil)
	d.tx.ownerRequests.EXPECT().UpdateStatus(gomock.Any(), int64(8), ownerrequest.StatusApproved).Return(nil)
	d.tx.users.EXPECT().UpdateRole(gomock.Any(), member.UserID, user.RoleAdmin).Return(nil)
	d.tx.quadras.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *quadra.Quadra) (int64, error) {
			assert.Equal(t, address[:quadra.MaxEnderecoLength], q.Endereco())
			return 20, nil
		})
	d.events.EXPECT().Publish(gomock.Any(), shared.TopicOwnerRequestApproved, gomock.Any()).Return(nil)
	d.metrics.EXPECT().AdminActionApplied(commands.ModelOwnerRequest, commands.ActionApprove, 1, 0)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

	result, err := d.uc.ApplyOwnerRequestAction(ctx, staff, commands.ActionApprove, []int64{8})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Empty(t, result.Skipped)
}

func TestApplyOwnerRequestAction_RejectOnlyFromOpenStatuses(t *testing.T) {
	d := newAdminDeps(t)
	ctx := context.Background()

	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(1)).Return(ownerRequestWith(t, 1, ownerrequest.StatusPaid), nil)
	d.tx.ownerRequests.EXPECT().UpdateStatus(gomock.Any(), int64(1), ownerrequest.StatusRejected).Return(nil)
	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(2)).Return(ownerRequestWith(t, 2, ownerrequest.StatusRejected), nil)
	d.metrics.EXPECT().AdminActionApplied(commands.ModelOwnerRequest, commands.ActionReject, 1, 1)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(assert.AnError)

	result, err := d.uc.ApplyOwnerRequestAction(ctx, staff, commands.ActionReject, []int64{1, 2})

	require.NoError(t, err, "a cache failure must not fail the action")
	assert.Equal(t, 1, result.Processed)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, int64(2), result.Skipped[0].ID)
}

func TestApplyOwnerRequestAction_StopsOnDatabaseError(t *testing.T) {
	d := newAdminDeps(t)
	ctx := context.Background()

	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(1)).Return(ownerRequestWith(t, 1, ownerrequest.StatusPending), nil)
	d.tx.ownerRequests.EXPECT().UpdateStatus(gomock.Any(), int64(1), ownerrequest.StatusPaid).Return(nil)
	d.tx.ownerRequests.EXPECT().LockByID(gomock.Any(), int64(2)).Return(nil, infra.WrapRepoErr("lock", assert.AnError))
	d.metrics.EXPECT().AdminActionApplied(commands.ModelOwnerRequest, commands.ActionMarkPaid, 1, 0)
	d.counts.EXPECT().Invalidate(gomock.Any()).Return(nil)

	result, err := d.uc.ApplyOwnerRequestAction(ctx, staff, commands.ActionMarkPaid, []int64{1, 2, 3})

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Processed, "the committed request stays processed")
}

func TestApplyOwnerRequestAction_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		actor  *shared.Actor
		action string
		want   error
	}{
		{name: "anonymous", actor: nil, action: commands.ActionMarkPaid, want: errs.ErrUnauthorized},
		{name: "non-staff", actor: member, action: commands.ActionMarkPaid, want: errs.ErrStaffRequired},
		{name: "unknown action", actor: staff, action: "archive", want: commands.ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newAdminDeps(t)

			result, err := d.uc.ApplyOwnerRequestAction(context.Background(), tt.actor, tt.action, []int64{1})

			assert.Nil(t, result)
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestApplyAgendamentoAction(t *testing.T) {
	t.Run("confirm updates the distinct ids in one statement", func(t *testing.T) {
		d := newAdminDeps(t)
		d.tx.agendamentos.EXPECT().SetConfirmed(gomock.Any(), []int64{5, 6}, true).Return(int64(1), nil)
		d.metrics.EXPECT().AdminActionApplied(commands.ModelAgendamento, commands.ActionConfirm, 1, 1)

		result, err := d.uc.ApplyAgendamentoAction(context.Background(), staff, commands.ActionConfirm, []int64{5, 5, 6})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	})

	t.Run("unconfirm clears the flag", func(t *testing.T) {
		d := newAdminDeps(t)
		d.tx.agendamentos.EXPECT().SetConfirmed(gomock.Any(), []int64{5}, false).Return(int64(1), nil)
		d.metrics.EXPECT().AdminActionApplied(commands.ModelAgendamento, commands.ActionUnconfirm, 1, 0)

		_, err := d.uc.ApplyAgendamentoAction(context.Background(), staff, commands.ActionUnconfirm, []int64{5})

		require.NoError(t, err)
	})

	t.Run("approve is not an agendamento action", func(t *testing.T) {
		d := newAdminDeps(t)

		_, err := d.uc.ApplyAgendamentoAction(context.Background(), staff, commands.ActionApprove, []int64{5})

		assert.True(t, errs.Is(err, commands.ErrUnknownAction))
	})
}

func TestUpdateAdminNotes(t *testing.T) {
	t.Run("missing request maps to not found", func(t *testing.T) {
		d := newAdminDeps(t)
		d.tx.ownerRequests.EXPECT().UpdateAdminNotes(gomock.Any(), int64(9), "ok").Return(notFound())

		err := d.uc.UpdateAdminNotes(context.Background(), staff, 9, "ok")

		assert.True(t, errs.Is(err, errs.ErrOwnerRequestNotFound))
	})

	t.Run("non-staff is refused before touching the database", func(t *testing.T) {
		d := newAdminDeps(t)

		err := d.uc.UpdateAdminNotes(context.Background(), member, 9, "ok")

		assert.True(t, errs.Is(err, errs.ErrStaffRequired))
	})
}
