package request

import (
	"strings"

	"pos-loyalty/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EnrollRequest struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	ProgramID  string    `json:"programId" binding:"required,max=64"`
}

func (r EnrollRequest) ToInput() commands.EnrollInput {
	return commands.EnrollInput{
		CustomerID: r.CustomerID,
		ProgramID:  strings.TrimSpace(r.ProgramID),
	}
}

// SaleRequest is a finalized sale. SaleTotal accepts a JSON string or number.
type SaleRequest struct {
	AccountID uuid.UUID       `json:"accountId" binding:"required"`
	SaleID    string          `json:"saleId" binding:"required,max=200"`
	SaleTotal decimal.Decimal `json:"saleTotal"`
}

func (r SaleRequest) ToEvent() commands.SaleEvent {
	return commands.SaleEvent{
		AccountID: r.AccountID,
		SaleID:    strings.TrimSpace(r.SaleID),
		SaleTotal: r.SaleTotal,
	}
}

// PointsRequest backs both manual adjustments (signed) and expirations (positive).
type PointsRequest struct {
	Points int64  `json:"points" binding:"required"`
	Reason string `json:"reason" binding:"max=200"`
}

type RedeemRequest struct {
	RewardID uuid.UUID `json:"rewardId" binding:"required"`
}

type UseRedemptionRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}
