//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"pos-loyalty/internal/domain/operator"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/pkg/jwt"
	"pos-loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	svc := jwt.NewService("s3cret", time.Hour, jwt.WithIssuer("pos-backoffice"))
	validator := usecase.NewTokenValidator(svc)

	t.Run("resolves operator and role", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.GenerateToken(id, "store-3", operator.RoleAdmin)
		require.NoError(t, err)

		gotID, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.Equal(t, operator.RoleAdmin, role)
	})

	t.Run("nil operator", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.Nil, "store-3", operator.RoleClerk)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, usecase.ErrAnonymousToken))
	})

	t.Run("unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "store-3", operator.Role("owner"))
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.True(t, errs.Is(err, operator.ErrInvalidRole))
	})

	t.Run("bad token", func(t *testing.T) {
		_, _, err := validator.ValidateToken("x.y.z")
		assert.True(t, errs.Is(err, jwt.ErrInvalidToken))
	})
}
