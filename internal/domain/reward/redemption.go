package reward

import (
	"time"

	"pos-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusIssued    Status = "issued"
	StatusUsed      Status = "used"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusIssued, StatusUsed, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

type Redemption struct {
	id             uuid.UUID
	accountID      uuid.UUID
	rewardID       uuid.UUID
	pointsSpent    int64
	code           Code
	status         Status
	idempotencyKey uuid.UUID
	ledgerEntryID  uuid.UUID
	issuedAt       time.Time
	updatedAt      time.Time
}

func NewRedemption(
	id, accountID, rewardID uuid.UUID,
	pointsSpent int64,
	code Code,
	idempotencyKey, ledgerEntryID uuid.UUID,
	now time.Time,
) *Redemption {
	return &Redemption{
		id:             id,
		accountID:      accountID,
		rewardID:       rewardID,
		pointsSpent:    pointsSpent,
		code:           code,
		status:         StatusIssued,
		idempotencyKey: idempotencyKey,
		ledgerEntryID:  ledgerEntryID,
		issuedAt:       now,
		updatedAt:      now,
	}
}

func ReconstructRedemption(
	id, accountID, rewardID uuid.UUID,
	pointsSpent int64,
	code Code,
	status Status,
	idempotencyKey, ledgerEntryID uuid.UUID,
	issuedAt, updatedAt time.Time,
) *Redemption {
	return &Redemption{
		id:             id,
		accountID:      accountID,
		rewardID:       rewardID,
		pointsSpent:    pointsSpent,
		code:           code,
		status:         status,
		idempotencyKey: idempotencyKey,
		ledgerEntryID:  ledgerEntryID,
		issuedAt:       issuedAt,
		updatedAt:      updatedAt,
	}
}

// Use and Cancel are only allowed from issued.
func (r *Redemption) Use(now time.Time) error {
	return r.transition(StatusUsed, now)
}

func (r *Redemption) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

func (r *Redemption) transition(to Status, now time.Time) error {
	if r.status != StatusIssued {
		return errs.Wrapf(errs.ErrInvalidRedemptionState, "cannot move from %s to %s", r.status, to)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func (r *Redemption) ID() uuid.UUID             { return r.id }
func (r *Redemption) AccountID() uuid.UUID      { return r.accountID }
func (r *Redemption) RewardID() uuid.UUID       { return r.rewardID }
func (r *Redemption) PointsSpent() int64        { return r.pointsSpent }
func (r *Redemption) Code() Code                { return r.code }
func (r *Redemption) Status() Status            { return r.status }
func (r *Redemption) IdempotencyKey() uuid.UUID { return r.idempotencyKey }
func (r *Redemption) LedgerEntryID() uuid.UUID  { return r.ledgerEntryID }
func (r *Redemption) IssuedAt() time.Time       { return r.issuedAt }
func (r *Redemption) UpdatedAt() time.Time      { return r.updatedAt }
