//go:build unit

package operator_test

import (
	"testing"

	"pos-loyalty/internal/domain/operator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"clerk", "manager", "admin"} {
		role, err := operator.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := operator.NewRole("cashier")
	assert.ErrorIs(t, err, operator.ErrInvalidRole)
}

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role operator.Role
		min  operator.Role
		want bool
	}{
		{operator.RoleClerk, operator.RoleClerk, true},
		{operator.RoleClerk, operator.RoleManager, false},
		{operator.RoleManager, operator.RoleClerk, true},
		{operator.RoleAdmin, operator.RoleManager, true},
		{operator.RoleManager, operator.RoleAdmin, false},
		{operator.Role("ghost"), operator.RoleClerk, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.AtLeast(tt.min), "%s >= %s", tt.role, tt.min)
	}
}
