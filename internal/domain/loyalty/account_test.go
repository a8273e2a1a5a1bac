//go:build unit

package loyalty_test

import (
	"strings"
	"testing"

	"pos-loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		customerID := uuid.New()
		a, err := loyalty.NewAccount(customerID, " pos-rewards ", "bronze", now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, customerID, a.CustomerID())
		assert.Equal(t, "pos-rewards", a.ProgramID())
		assert.Equal(t, "bronze", a.TierKey())
		assert.True(t, a.IsActive())
		assert.Equal(t, a.CreatedAt(), a.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := loyalty.NewAccount(uuid.Nil, "p", "bronze", now)
		assert.ErrorIs(t, err, loyalty.ErrInvalidCustomer)

		_, err = loyalty.NewAccount(uuid.New(), "  ", "bronze", now)
		assert.ErrorIs(t, err, loyalty.ErrInvalidProgram)

		_, err = loyalty.NewAccount(uuid.New(), strings.Repeat("p", loyalty.MaxProgramIDLength+1), "bronze", now)
		assert.ErrorIs(t, err, loyalty.ErrInvalidProgram)
	})

	t.Run("deactivate only once", func(t *testing.T) {
		a, err := loyalty.NewAccount(uuid.New(), "p", "bronze", now)
		require.NoError(t, err)
		require.NoError(t, a.Deactivate(now))
		assert.False(t, a.IsActive())
		assert.ErrorIs(t, a.Deactivate(now), loyalty.ErrAccountInactive)
	})
}
