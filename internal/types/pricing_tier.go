package types

// PricingTier is the price band a suburb is assigned to. Schedules carry one
// price set per tier.
//
// swagger:enum PricingTier
type PricingTier string

const (
	TierBasic    PricingTier = "basic"
	TierStandard PricingTier = "standard"
	TierPremium  PricingTier = "premium"
)

// PricingTiers returns all defined pricing tiers.
func PricingTiers() []PricingTier {
	return []PricingTier{TierBasic, TierStandard, TierPremium}
}

// Valid reports whether the tier is one of the defined tiers.
func (t PricingTier) Valid() bool {
	switch t {
	case TierBasic, TierStandard, TierPremium:
		return true
	}

	return false
}
