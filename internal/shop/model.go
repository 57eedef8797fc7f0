package shop

import (
	"math"

	"blockparty/internal/config"
)

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodImpatient Mood = "impatient"
)

type Customer struct {
	ID    string `json:"id"`
	Mood  Mood   `json:"mood"`
	Spend int    `json:"spend"`
}

type UpgradeTrack string

const (
	TrackFixtures UpgradeTrack = "fixtures"
	TrackProduct  UpgradeTrack = "product"
)

// EconomySnapshot is the slice of progression state the earnings multiplier
// reads. Pure inputs only; callers copy it out under their own lock.
type EconomySnapshot struct {
	ProductTier  int
	Combo        int
	LicenseLevel int
	Prestige     int
	Boosting     bool
	PartyBoost   bool
}

// Multiplier computes the compound earnings multiplier. The combo
// contribution caps at ComboBonusCap even though the counter itself runs
// higher.
func Multiplier(bal config.Balance, st EconomySnapshot) float64 {
	base := 1 + float64(st.ProductTier)*bal.ProductTierBonus
	combo := st.Combo
	if combo > bal.ComboBonusCap {
		combo = bal.ComboBonusCap
	}
	comboBonus := 1 + float64(combo)*bal.ComboStep
	boost := 1.0
	if st.Boosting {
		boost = bal.BoostFactor
	}
	party := 1.0
	if st.PartyBoost {
		party = bal.PartyFactor
	}
	license := 1 + float64(st.LicenseLevel)*bal.LicenseStep
	prestige := 1 + float64(st.Prestige)*bal.PrestigeStep
	return base * comboBonus * boost * party * license * prestige
}

// MoodFactor scales a customer's spend by temperament.
func MoodFactor(bal config.Balance, mood Mood) float64 {
	switch mood {
	case MoodHappy:
		return bal.MoodHappyFactor
	case MoodImpatient:
		return bal.MoodImpatientFactor
	default:
		return 1
	}
}

// Earnings converts a served customer into whole currency, round half up.
func Earnings(bal config.Balance, c Customer, multiplier float64) int {
	v := float64(c.Spend) * multiplier * MoodFactor(bal, c.Mood)
	return int(math.Round(v))
}

// UpgradeCost is the price of moving from tier to tier+1.
func UpgradeCost(bal config.Balance, track UpgradeTrack, tier int) int {
	step := bal.FixturesCostStep
	if track == TrackProduct {
		step = bal.ProductCostStep
	}
	return (tier + 1) * step
}

// AuditReward is the pass payout at the license level held when the audit
// was passed, before the level increments.
func AuditReward(bal config.Balance, licenseLevel int) int {
	return bal.AuditRewardBase + licenseLevel*bal.AuditRewardStep
}
