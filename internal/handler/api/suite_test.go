//go:build unit

package api_test

import (
	"net/http"
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/operator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bearerToken = "bearer-token"

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// stands in for RequireAuth so handlers can be exercised without real tokens
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("operator_id", uuid.New())
	c.Set("operator_role", operator.RoleAdmin)
	c.Next()
}

func sampleEntry(accountID uuid.UUID, seq int64, kind loyalty.Kind, delta, running int64) loyalty.Entry {
	return loyalty.Entry{
		ID:             uuid.New(),
		AccountID:      accountID,
		Seq:            seq,
		Kind:           kind,
		Delta:          delta,
		SourceRef:      "ref-" + kind.String(),
		RunningBalance: running,
		CreatedAt:      fixedNow,
	}
}
