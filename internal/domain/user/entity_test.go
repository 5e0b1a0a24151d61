//go:build unit

package user_test

import (
	"strings"
	"testing"

	"ifuut-api/internal/domain/user"
	"ifuut-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Username{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("joao.silva")
		email, _ := user.NewEmail("joao@example.com")
		name, _ := user.NewPersonName("João", "Silva")
		expected, err := user.NewUser(username, email, name, user.RoleComum, "hashed_password", actual.DateJoined())
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Zero(t, actual.ID())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsStaff())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "letters digits and symbols",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("maria_2024@clube.br+x-y") },
			},
			{
				name:   "accented letters",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("joão") },
			},
			{
				name:   "empty username",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("  ") },
				errIs:  user.ErrEmptyUsername,
			},
			{
				name:   "whitespace inside",
				mutate: func(b *builder.UserBuilder) { b.WithUsername("joao silva") },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", user.MaxUsernameLength+1)) },
				errIs:  user.ErrUsernameTooLong,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "email is optional",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid@") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "comum", mutate: func(b *builder.UserBuilder) { b.WithRole("comum") }},
			{name: "associado", mutate: func(b *builder.UserBuilder) { b.WithRole("associado") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("dono") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "first name too long",
				mutate: func(b *builder.UserBuilder) { b.WithFirstName(strings.Repeat("x", user.MaxNameLength+1)) },
				errIs:  user.ErrFirstNameTooLong,
			},
			{
				name:   "last name too long",
				mutate: func(b *builder.UserBuilder) { b.WithLastName(strings.Repeat("x", user.MaxNameLength+1)) },
				errIs:  user.ErrLastNameTooLong,
			},
			{
				name:   "either name matches the shared error",
				mutate: func(b *builder.UserBuilder) { b.WithLastName(strings.Repeat("x", user.MaxNameLength+1)) },
				errIs:  user.ErrNameTooLong,
			},
		})
	})
}

func TestUser_Promote(t *testing.T) {
	u := builder.NewUserBuilder().WithRole("associado").BuildPersisted()

	u.Promote()

	assert.Equal(t, user.RoleAdmin, u.Role())
	assert.False(t, u.IsStaff(), "promotion must not grant back-office access")
}

func TestRole(t *testing.T) {
	assert.True(t, user.RoleComum.SelfAssignable())
	assert.True(t, user.RoleAssociado.SelfAssignable())
	assert.False(t, user.RoleAdmin.SelfAssignable())

	assert.Equal(t, "joao (Comum)", user.DisplayName("joao", user.RoleComum))
	assert.Equal(t, "ana (Associado)", user.DisplayName("ana", user.RoleAssociado))
	assert.Equal(t, "pedro (Administrador)", user.DisplayName("pedro", user.RoleAdmin))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
