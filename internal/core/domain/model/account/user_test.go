package account_test

import (
	"testing"
	"time"

	"github.com/kikis202/spot/internal/core/domain/model/account"
	"github.com/kikis202/spot/internal/core/domain/model/kernel"
	"github.com/kikis202/spot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected account.Role
	}{
		{"default", account.RoleDefault},
		{"USER", account.RoleUser},
		{"COURIER", account.RoleCourier},
		{"BUISNESS", account.RoleBusiness},
		{"SUPPORT", account.RoleSupport},
		{"ADMIN", account.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := account.RoleFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, role)
			assert.Equal(t, tt.input, role.String())
		})
	}

	t.Run("should reject unknown strings", func(t *testing.T) {
		// The persisted business role keeps its historical misspelling,
		// so the correctly spelled variant is not a valid role.
		for _, input := range []string{"", "admin", "BUSINESS", "UNKNOWN"} {
			role, err := account.RoleFromString(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
			assert.Equal(t, account.RoleUnknown, role)
		}
	})
}

func TestRole_Tiers(t *testing.T) {
	assert.True(t, account.RoleCourier.IsCourier())
	assert.True(t, account.RoleAdmin.IsCourier())
	assert.False(t, account.RoleUser.IsCourier())

	assert.True(t, account.RoleAdmin.IsAdmin())
	assert.False(t, account.RoleSupport.IsAdmin())
}

func TestRestoreUser(t *testing.T) {
	t.Run("should restore user", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-24 * time.Hour)

		u, err := account.RestoreUser(id, "alice@example.com", account.RoleUser, createdAt)

		require.NoError(t, err)
		assert.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, account.RoleUser, u.Role())
		assert.Equal(t, createdAt, u.CreatedAt())
	})

	t.Run("should require email", func(t *testing.T) {
		u, err := account.RestoreUser(kernel.NewUUID(), "", account.RoleUser, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, u)
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		u, err := account.RestoreUser(kernel.NewUUID(), "bob@example.com", account.RoleUnknown, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, u)
	})
}

func TestUser_ChangeRole(t *testing.T) {
	t.Run("should change role on behalf of another user", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "carol@example.com")
		require.NoError(t, err)
		admin := kernel.NewUUID()

		err = u.ChangeRole(account.RoleCourier, admin)

		require.NoError(t, err)
		assert.Equal(t, account.RoleCourier, u.Role())
	})

	t.Run("should forbid changing own role", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := account.NewUser(id, "dave@example.com")
		require.NoError(t, err)

		err = u.ChangeRole(account.RoleAdmin, id)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), account.ErrCannotChangeOwnRole.Error())
		assert.Equal(t, account.RoleDefault, u.Role())
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		u, err := account.NewUser(kernel.NewUUID(), "eve@example.com")
		require.NoError(t, err)

		err = u.ChangeRole(account.RoleUnknown, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewCaller(t *testing.T) {
	t.Run("should create caller", func(t *testing.T) {
		id := kernel.NewUUID()

		caller, err := account.NewCaller(id, account.RoleUser)

		require.NoError(t, err)
		assert.True(t, caller.ID.IsEqual(id))
		assert.Equal(t, account.RoleUser, caller.Role)
	})

	t.Run("should reject zero-value id", func(t *testing.T) {
		var missing kernel.UUID

		_, err := account.NewCaller(missing, account.RoleUser)

		require.Error(t, err)
	})
}
