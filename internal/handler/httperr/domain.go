package httperr

import (
	"net/http"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/domain/reward"
	"pos-loyalty/internal/pkg/errs"
	"pos-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// First match wins, so more specific sentinels come before the ones they are marked with.
var domainMappings = []mapping{
	// referential
	{errs.ErrUnknownAccount, http.StatusNotFound, "unknown_account", "Loyalty account not found"},
	{errs.ErrRewardNotFound, http.StatusNotFound, "reward_not_found", "Reward not found"},
	{errs.ErrRedemptionNotFound, http.StatusNotFound, "redemption_not_found", "Redemption not found"},
	{errs.ErrTierNotFound, http.StatusNotFound, "tier_not_found", "Tier not found"},

	// business rules
	{errs.ErrInsufficientPoints, http.StatusUnprocessableEntity, "insufficient_points", "Insufficient points"},
	{errs.ErrInvalidAdjustment, http.StatusBadRequest, "invalid_adjustment", "Invalid adjustment"},
	{errs.ErrInsufficientBalance, http.StatusUnprocessableEntity, "insufficient_balance", "Insufficient balance"},
	{errs.ErrTierNotEligible, http.StatusUnprocessableEntity, "tier_not_eligible", "Tier not eligible for reward"},
	{errs.ErrRewardInactive, http.StatusUnprocessableEntity, "reward_inactive", "Reward is not active"},
	{errs.ErrOutOfStock, http.StatusUnprocessableEntity, "out_of_stock", "Reward out of stock"},
	{errs.ErrInvalidRedemptionState, http.StatusConflict, "invalid_redemption_state", "Redemption is not in a state that allows this action"},
	{errs.ErrAccountAlreadyEnrolled, http.StatusConflict, "already_enrolled", "Customer already enrolled in program"},
	{loyalty.ErrAccountInactive, http.StatusConflict, "account_inactive", "Account is already inactive"},
	{errs.ErrIdempotencyKeyReused, http.StatusConflict, "idempotency_key_reused", "Idempotency key was used for a different request"},

	// validation
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header required"},
	{errs.ErrInvalidSaleEvent, http.StatusBadRequest, "invalid_sale_event", "Invalid sale event"},
	{errs.ErrInvalidDelta, http.StatusBadRequest, "invalid_delta", "Point delta does not match entry kind"},
	{errs.ErrPointsOutOfRange, http.StatusBadRequest, "points_out_of_range", "Points amount out of range"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor", "Invalid cursor"},
	{loyalty.ErrInvalidCustomer, http.StatusBadRequest, "invalid_customer", "Invalid customer id"},
	{loyalty.ErrInvalidProgram, http.StatusBadRequest, "invalid_program", "Invalid program id"},
	{reward.ErrInvalidCode, http.StatusBadRequest, "invalid_code", "Invalid redemption code"},

	// concurrency, safe to retry
	{errs.ErrConcurrentConflict, http.StatusConflict, "concurrent_conflict", "Concurrent update, please retry"},
	{errs.ErrCodeAllocationFailed, http.StatusConflict, "code_allocation_failed", "Could not allocate a redemption code, please retry"},

	// integrity
	{errs.ErrLedgerCorrupted, http.StatusInternalServerError, "ledger_corrupted", "Ledger integrity check failed"},
	{errs.ErrInvalidTierCatalog, http.StatusInternalServerError, "tier_catalog_invalid", "Tier catalog misconfigured"},
}

// Status resolves err to the HTTP status and public message it is reported with.
func Status(err error) (int, string) {
	m := resolve(err)
	return m.status, m.message
}

func resolve(err error) mapping {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			return m
		}
	}
	return mapping{status: http.StatusInternalServerError, code: CodeInternal, message: "Internal server error"}
}

// AbortWithDomainError reports a use case failure. Retryable failures say so in detail.
func AbortWithDomainError(c *gin.Context, err error) {
	m := resolve(err)

	var detail any
	if errs.IsRetryable(err) {
		detail = gin.H{"retryable": true}
	}
	AbortWithCode(c, m.status, m.code, err, m.message, detail)
}
