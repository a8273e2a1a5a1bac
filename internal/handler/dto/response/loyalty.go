package response

import (
	"time"

	"pos-loyalty/internal/domain/loyalty"
	"pos-loyalty/internal/usecase/commands"
	"pos-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	ProgramID  string    `json:"programId"`
	Tier       string    `json:"tier"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromAccount(a *loyalty.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID(),
		CustomerID: a.CustomerID(),
		ProgramID:  a.ProgramID(),
		Tier:       a.TierKey(),
		IsActive:   a.IsActive(),
		CreatedAt:  a.CreatedAt(),
	}
}

type BalanceResponse struct {
	AccountID        uuid.UUID       `json:"accountId"`
	CurrentPoints    int64           `json:"currentPoints"`
	LifetimeEarned   int64           `json:"lifetimeEarned"`
	LifetimeRedeemed int64           `json:"lifetimeRedeemed"`
	LifetimeSpend    decimal.Decimal `json:"lifetimeSpend"`
	Tier             string          `json:"tier"`
	TierName         string          `json:"tierName,omitempty"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	return &BalanceResponse{
		AccountID:        v.AccountID,
		CurrentPoints:    v.CurrentPoints,
		LifetimeEarned:   v.LifetimeEarned,
		LifetimeRedeemed: v.LifetimeRedeemed,
		LifetimeSpend:    v.LifetimeSpend,
		Tier:             v.Tier,
		TierName:         v.TierName,
		UpdatedAt:        v.UpdatedAt,
	}
}

type LedgerEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	Seq            int64     `json:"seq"`
	Kind           string    `json:"kind"`
	Delta          int64     `json:"delta"`
	SourceRef      string    `json:"sourceRef"`
	RunningBalance int64     `json:"runningBalance"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromEntry(e loyalty.Entry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:             e.ID,
		Seq:            e.Seq,
		Kind:           e.Kind.String(),
		Delta:          e.Delta,
		SourceRef:      e.SourceRef,
		RunningBalance: e.RunningBalance,
		CreatedAt:      e.CreatedAt,
	}
}

type LedgerPageResponse struct {
	Entries    []LedgerEntryResponse `json:"entries"`
	NextCursor *string               `json:"nextCursor,omitempty"`
}

func FromLedgerPage(p *queries.LedgerPage) *LedgerPageResponse {
	entries := make([]LedgerEntryResponse, len(p.Entries))
	for i, v := range p.Entries {
		entries[i] = LedgerEntryResponse{
			ID:             v.ID,
			Seq:            v.Seq,
			Kind:           v.Kind,
			Delta:          v.Delta,
			SourceRef:      v.SourceRef,
			RunningBalance: v.RunningBalance,
			CreatedAt:      v.CreatedAt,
		}
	}
	return &LedgerPageResponse{Entries: entries, NextCursor: p.NextCursor}
}

type ProjectionResponse struct {
	CurrentPoints    int64 `json:"currentPoints"`
	LifetimeEarned   int64 `json:"lifetimeEarned"`
	LifetimeRedeemed int64 `json:"lifetimeRedeemed"`
	LastSeq          int64 `json:"lastSeq"`
}

type ReconcileResponse struct {
	AccountID   uuid.UUID          `json:"accountId"`
	Consistent  bool               `json:"consistent"`
	Snapshot    ProjectionResponse `json:"snapshot"`
	Ledger      ProjectionResponse `json:"ledger"`
	Drift       []string           `json:"drift,omitempty"`
	LedgerError *string            `json:"ledgerError,omitempty"`
}

func FromReconcileView(v *queries.ReconcileView) *ReconcileResponse {
	return &ReconcileResponse{
		AccountID:   v.AccountID,
		Consistent:  v.Consistent,
		Snapshot:    ProjectionResponse(v.Snapshot),
		Ledger:      ProjectionResponse(v.Ledger),
		Drift:       v.Drift,
		LedgerError: v.LedgerError,
	}
}

type EarnResponse struct {
	Entry    LedgerEntryResponse `json:"entry"`
	Balance  int64               `json:"balance"`
	Tier     TierOutcomeResponse `json:"tier"`
	Replayed bool                `json:"replayed"`
}

func FromEarnResult(r *commands.EarnResult) *EarnResponse {
	return &EarnResponse{
		Entry:    FromEntry(r.Entry),
		Balance:  r.Balance.CurrentPoints,
		Tier:     FromTierOutcome(&r.Tier),
		Replayed: r.Replayed,
	}
}

type ExpireResponse struct {
	Entry     *LedgerEntryResponse `json:"entry,omitempty"`
	Requested int64                `json:"requested"`
	Expired   int64                `json:"expired"`
	Balance   int64                `json:"balance"`
}

func FromExpireResult(r *commands.ExpireResult) *ExpireResponse {
	out := &ExpireResponse{
		Requested: r.Requested,
		Expired:   r.Expired,
		Balance:   r.Balance.CurrentPoints,
	}
	if r.Entry != nil {
		e := FromEntry(*r.Entry)
		out.Entry = &e
	}
	return out
}

type TierOutcomeResponse struct {
	AccountID    uuid.UUID `json:"accountId"`
	Tier         string    `json:"tier"`
	PreviousTier string    `json:"previousTier"`
	Changed      bool      `json:"changed"`
}

func FromTierOutcome(o *commands.TierOutcome) TierOutcomeResponse {
	return TierOutcomeResponse{
		AccountID:    o.AccountID,
		Tier:         o.Tier.Key,
		PreviousTier: o.PreviousTier,
		Changed:      o.Changed,
	}
}

type EvaluationFailureResponse struct {
	AccountID uuid.UUID `json:"accountId"`
	Error     string    `json:"error"`
}

type BatchEvaluationResponse struct {
	Evaluated int                         `json:"evaluated"`
	Changed   int                         `json:"changed"`
	Results   []TierOutcomeResponse       `json:"results"`
	Failures  []EvaluationFailureResponse `json:"failures"`
}

func FromBatchEvaluation(b *commands.BatchEvaluation) *BatchEvaluationResponse {
	out := &BatchEvaluationResponse{
		Evaluated: len(b.Results),
		Changed:   b.Changed(),
		Results:   make([]TierOutcomeResponse, len(b.Results)),
		Failures:  make([]EvaluationFailureResponse, len(b.Failures)),
	}
	for i := range b.Results {
		out.Results[i] = FromTierOutcome(&b.Results[i])
	}
	for i, f := range b.Failures {
		out.Failures[i] = EvaluationFailureResponse{AccountID: f.AccountID, Error: f.Err.Error()}
	}
	return out
}

type TierResponse struct {
	Key                  string          `json:"key"`
	DisplayName          string          `json:"displayName"`
	MinPoints            int64           `json:"minPoints"`
	MaxPoints            *int64          `json:"maxPoints,omitempty"`
	MinSpend             decimal.Decimal `json:"minSpend"`
	EarningMultiplier    decimal.Decimal `json:"earningMultiplier"`
	RedemptionMultiplier decimal.Decimal `json:"redemptionMultiplier"`
	DiscountPercent      decimal.Decimal `json:"discountPercent"`
	Benefits             BenefitsPayload `json:"benefits"`
}

type BenefitsPayload struct {
	FreeDelivery     bool `json:"freeDelivery"`
	PrioritySupport  bool `json:"prioritySupport"`
	BirthdayBonus    bool `json:"birthdayBonus"`
	ExclusiveRewards bool `json:"exclusiveRewards"`
}

func FromTierViews(views []queries.TierView) []TierResponse {
	out := make([]TierResponse, len(views))
	for i, v := range views {
		out[i] = TierResponse{
			Key:                  v.Key,
			DisplayName:          v.DisplayName,
			MinPoints:            v.MinPoints,
			MaxPoints:            v.MaxPoints,
			MinSpend:             v.MinSpend,
			EarningMultiplier:    v.EarningMultiplier,
			RedemptionMultiplier: v.RedemptionMultiplier,
			DiscountPercent:      v.DiscountPercent,
			Benefits: BenefitsPayload{
				FreeDelivery:     v.FreeDelivery,
				PrioritySupport:  v.PrioritySupport,
				BirthdayBonus:    v.BirthdayBonus,
				ExclusiveRewards: v.ExclusiveRewards,
			},
		}
	}
	return out
}

type RewardResponse struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	PointsCost      int64            `json:"pointsCost"`
	MonetaryValue   decimal.Decimal  `json:"monetaryValue"`
	Type            string           `json:"type"`
	DiscountPercent *decimal.Decimal `json:"discountPercent,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discountAmount,omitempty"`
	ProductID       *uuid.UUID       `json:"productId,omitempty"`
	Stock           *int64           `json:"stock,omitempty"`
	MinTier         *string          `json:"minTier,omitempty"`
	Featured        bool             `json:"featured"`
}

func FromRewardViews(views []queries.RewardView) []RewardResponse {
	out := make([]RewardResponse, len(views))
	for i, v := range views {
		out[i] = RewardResponse(v)
	}
	return out
}

type RedemptionResponse struct {
	ID            uuid.UUID `json:"id"`
	AccountID     uuid.UUID `json:"accountId"`
	RewardID      uuid.UUID `json:"rewardId"`
	PointsSpent   int64     `json:"pointsSpent"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	LedgerEntryID uuid.UUID `json:"ledgerEntryId"`
	IssuedAt      time.Time `json:"issuedAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRedemptionView(v queries.RedemptionView) *RedemptionResponse {
	r := RedemptionResponse(v)
	return &r
}

type RedeemResponse struct {
	Redemption *RedemptionResponse `json:"redemption"`
	Balance    int64               `json:"balance"`
	Replayed   bool                `json:"replayed"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		Redemption: FromRedemptionView(queries.NewRedemptionView(r.Redemption)),
		Balance:    r.Balance,
		Replayed:   r.IsReplayed,
	}
}

type CancelResponse struct {
	Redemption *RedemptionResponse `json:"redemption"`
	Refund     LedgerEntryResponse `json:"refund"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{
		Redemption: FromRedemptionView(queries.NewRedemptionView(r.Redemption)),
		Refund:     FromEntry(r.Refund),
	}
}
