package errs

import "errors"

// Sentinel errors shared by the command/query layers and the HTTP mapping.
var (
	// Account errors
	ErrUnknownAccount         = errors.New("unknown loyalty account")
	ErrAccountAlreadyEnrolled = errors.New("customer already enrolled in program")

	// Ledger errors
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidDelta        = errors.New("point delta does not match entry kind")
	ErrPointsOutOfRange    = errors.New("points out of range")
	ErrInvalidSaleEvent    = errors.New("invalid sale event")
	ErrInvalidAdjustment   = errors.New("invalid adjustment")
	ErrLedgerCorrupted     = errors.New("ledger replay does not match recorded balances")

	// Catalog errors
	ErrInvalidTierCatalog = errors.New("invalid tier catalog")
	ErrTierNotFound       = errors.New("tier not found")

	// Redemption errors
	ErrRewardNotFound         = errors.New("reward not found")
	ErrRewardInactive         = errors.New("reward inactive")
	ErrOutOfStock             = errors.New("reward out of stock")
	ErrTierNotEligible        = errors.New("tier not eligible for reward")
	ErrInsufficientPoints     = errors.New("insufficient points")
	ErrCodeAllocationFailed   = errors.New("redemption code allocation failed")
	ErrRedemptionNotFound     = errors.New("redemption not found")
	ErrInvalidRedemptionState = errors.New("invalid redemption state")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with different request")

	// Concurrency errors
	ErrConcurrentConflict = errors.New("concurrent conflict")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// IsRetryable reports whether the caller may retry the request with the same input.
func IsRetryable(err error) bool {
	return IsAny(err, ErrConcurrentConflict, ErrCodeAllocationFailed)
}
