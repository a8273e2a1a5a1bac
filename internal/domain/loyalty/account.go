package loyalty

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidProgram  = errors.New("invalid program id")
	ErrInvalidCustomer = errors.New("invalid customer id")
	ErrAccountInactive = errors.New("account is inactive")
)

const MaxProgramIDLength = 64

// Account is one customer's enrollment in one program. Accounts are never
// deleted; they are deactivated.
type Account struct {
	id         uuid.UUID
	customerID uuid.UUID
	programID  string
	tierKey    string
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAccount(customerID uuid.UUID, programID, initialTier string, now time.Time) (*Account, error) {
	if customerID == uuid.Nil {
		return nil, ErrInvalidCustomer
	}
	programID = strings.TrimSpace(programID)
	if programID == "" || len(programID) > MaxProgramIDLength {
		return nil, ErrInvalidProgram
	}
	return &Account{
		id:         uuid.New(),
		customerID: customerID,
		programID:  programID,
		tierKey:    initialTier,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAccount(
	id, customerID uuid.UUID,
	programID, tierKey string,
	active bool,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:         id,
		customerID: customerID,
		programID:  programID,
		tierKey:    tierKey,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Account) ChangeTier(key string, now time.Time) {
	a.tierKey = key
	a.updatedAt = now
}

func (a *Account) Deactivate(now time.Time) error {
	if !a.active {
		return ErrAccountInactive
	}
	a.active = false
	a.updatedAt = now
	return nil
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) CustomerID() uuid.UUID { return a.customerID }
func (a *Account) ProgramID() string     { return a.programID }
func (a *Account) TierKey() string       { return a.tierKey }
func (a *Account) IsActive() bool        { return a.active }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
