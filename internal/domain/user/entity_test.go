//go:build unit

package user_test

import (
	"strings"
	"testing"

	"ovenbook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("dana@example.com")
	require.NoError(t, err)

	t.Run("member user", func(t *testing.T) {
		u, err := user.NewUser(email, "hashed", "Dana", user.RoleMember)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "Dana", u.Name())
		assert.Equal(t, user.RoleMember, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		u, err := user.NewUser(email, "hashed", "  Dana  ", user.RoleMember)
		require.NoError(t, err)
		assert.Equal(t, "Dana", u.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "hashed", "   ", user.RoleMember)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "valid@example.com"},
		{name: "valid email with plus", input: "a+tag@example.co.uk"},
		{name: "surrounding whitespace trimmed", input: "  valid@example.com  "},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "invalidemail.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "invalid@", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword(strings.Repeat("a", 8))
	assert.NoError(t, err)

	_, err = user.NewPassword(strings.Repeat("a", 7))
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestRole(t *testing.T) {
	t.Run("member and admin are valid", func(t *testing.T) {
		for _, s := range []string{"member", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("only admin has admin authority", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.IsAdmin())
		assert.False(t, user.RoleMember.IsAdmin())
	})
}
