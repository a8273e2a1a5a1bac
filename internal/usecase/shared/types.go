package shared

// Outbox job kinds and topics consumed by the notification worker.
const (
	JobKindTierChanged      = "tier_changed"
	JobKindRedemptionIssued = "redemption_issued"

	TopicLoyaltyTier       = "loyalty.tier"
	TopicLoyaltyRedemption = "loyalty.redemption"
)
