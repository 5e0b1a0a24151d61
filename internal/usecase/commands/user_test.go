//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"ifuut-api/internal/domain/user"
	reqdto "ifuut-api/internal/handler/dto/request"
	"ifuut-api/internal/infra"
	"ifuut-api/internal/pkg/clock"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/commands"
	commandsmock "ifuut-api/tests/mock/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserDeps(t *testing.T) (*txHarness, *commandsmock.MockPasswordHasher, commands.UserCommands) {
	ctrl := gomock.NewController(t)
	tx := newTxHarness(ctrl)
	hasher := commandsmock.NewMockPasswordHasher(ctrl)
	return tx, hasher, commands.NewUserCommands(tx.uow, hasher, clock.NewFixedClock(fixedTime))
}

func TestRegister(t *testing.T) {
	t.Run("stores a hashed password and defaults to comum", func(t *testing.T) {
		tx, hasher, uc := newUserDeps(t)
		hasher.EXPECT().Hash("segredo123").Return("bcrypt-hash", nil)
		tx.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (int64, error) {
				assert.Equal(t, "bcrypt-hash", u.PasswordHash())
				assert.Equal(t, user.RoleComum, u.Role())
				assert.False(t, u.IsStaff())
				assert.True(t, u.IsActive())
				assert.Equal(t, fixedTime, u.DateJoined())
				return 21, nil
			})

		id, err := uc.Register(context.Background(), reqdto.RegisterRequest{Username: "maria", Password: "segredo123"})

		require.NoError(t, err)
		assert.Equal(t, int64(21), id)
	})

	t.Run("associado may be chosen at sign-up", func(t *testing.T) {
		tx, hasher, uc := newUserDeps(t)
		hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
		tx.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) (int64, error) {
				assert.Equal(t, user.RoleAssociado, u.Role())
				return 22, nil
			})

		_, err := uc.Register(context.Background(), reqdto.RegisterRequest{Username: "maria", Password: "x", Tipo: "associado"})

		require.NoError(t, err)
	})

	t.Run("admin is never self-assigned", func(t *testing.T) {
		_, _, uc := newUserDeps(t)

		_, err := uc.Register(context.Background(), reqdto.RegisterRequest{Username: "maria", Password: "x", Tipo: "admin"})

		fe, ok := errs.AsFieldError(err)
		require.True(t, ok, "got %v", err)
		assert.Contains(t, fe.Fields, "tipo")
	})

	t.Run("an over-long name is reported on its own field", func(t *testing.T) {
		long := strings.Repeat("n", user.MaxNameLength+1)
		for field, req := range map[string]reqdto.RegisterRequest{
			"first_name": {Username: "maria", Password: "x", FirstName: long},
			"last_name":  {Username: "maria", Password: "x", LastName: long},
		} {
			_, hasher, uc := newUserDeps(t)
			hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)

			_, err := uc.Register(context.Background(), req)

			fe, ok := errs.AsFieldError(err)
			require.True(t, ok, "got %v", err)
			assert.Len(t, fe.Fields, 1)
			assert.Contains(t, fe.Fields, field)
		}
	})

	t.Run("a taken username is reported on the username field", func(t *testing.T) {
		tx, hasher, uc := newUserDeps(t)
		hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
		tx.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("insert user", &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}))

		_, err := uc.Register(context.Background(), reqdto.RegisterRequest{Username: "maria", Password: "x"})

		fe, ok := errs.AsFieldError(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, []string{"A user with that username already exists."}, fe.Fields["username"])
	})
}
