package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance holds every gameplay tuning constant. The shipped page variants
// of the original game drifted on a handful of these (audit odds, spawn
// pacing), so they live in one table instead of being baked into the sim.
type Balance struct {
	// Queue
	QueueCap      int     `yaml:"queue_cap"`
	SpendMin      int     `yaml:"spend_min"`
	SpendMax      int     `yaml:"spend_max"`
	ImpatientProb float64 `yaml:"impatient_prob"`
	NeutralProb   float64 `yaml:"neutral_prob"`
	AbandonProb   float64 `yaml:"abandon_prob"`

	// Earnings curve
	ProductTierBonus    float64 `yaml:"product_tier_bonus"`
	ComboStep           float64 `yaml:"combo_step"`
	ComboBonusCap       int     `yaml:"combo_bonus_cap"`
	ComboCap            int     `yaml:"combo_cap"`
	BoostFactor         float64 `yaml:"boost_factor"`
	PartyFactor         float64 `yaml:"party_factor"`
	LicenseStep         float64 `yaml:"license_step"`
	PrestigeStep        float64 `yaml:"prestige_step"`
	MoodHappyFactor     float64 `yaml:"mood_happy_factor"`
	MoodImpatientFactor float64 `yaml:"mood_impatient_factor"`

	// Upgrades
	MaxTier          int `yaml:"max_tier"`
	FixturesCostStep int `yaml:"fixtures_cost_step"`
	ProductCostStep  int `yaml:"product_cost_step"`

	// Timers (milliseconds, matching the original page constants)
	SpawnBaseMS      int `yaml:"spawn_base_ms"`
	SpawnRushBaseMS  int `yaml:"spawn_rush_base_ms"`
	SpawnFloorMS     int `yaml:"spawn_floor_ms"`
	SpawnTierStepMS  int `yaml:"spawn_tier_step_ms"`
	SweepEveryMS     int `yaml:"sweep_every_ms"`
	AutoServeBaseMS  int `yaml:"auto_serve_base_ms"`
	AutoServeStepMS  int `yaml:"auto_serve_step_ms"`
	BoostDurationMS  int `yaml:"boost_duration_ms"`
	RushActiveSecs   int `yaml:"rush_active_secs"`
	RushIncomingSecs int `yaml:"rush_incoming_secs"`
	AuditEveryMS     int `yaml:"audit_every_ms"`

	// Audit mini-game
	AuditProb       float64 `yaml:"audit_prob"`
	AuditRewardBase int     `yaml:"audit_reward_base"`
	AuditRewardStep int     `yaml:"audit_reward_step"`
	AuditPenalty    int     `yaml:"audit_penalty"`
	MaxLicense      int     `yaml:"max_license"`

	// Prestige
	PrestigeThreshold int `yaml:"prestige_threshold"`

	// Presentation-adjacent
	EventLogCap int `yaml:"event_log_cap"`
	ShopNameMax int `yaml:"shop_name_max"`
}

// Default returns the balance used by the rush-hour variant.
func Default() Balance {
	return Balance{
		QueueCap:      5,
		SpendMin:      5,
		SpendMax:      10,
		ImpatientProb: 0.15,
		NeutralProb:   0.6,
		AbandonProb:   0.35,

		ProductTierBonus:    0.35,
		ComboStep:           0.05,
		ComboBonusCap:       10,
		ComboCap:            20,
		BoostFactor:         1.3,
		PartyFactor:         1.2,
		LicenseStep:         0.15,
		PrestigeStep:        0.2,
		MoodHappyFactor:     1.2,
		MoodImpatientFactor: 0.7,

		MaxTier:          3,
		FixturesCostStep: 40,
		ProductCostStep:  50,

		SpawnBaseMS:      1400,
		SpawnRushBaseMS:  900,
		SpawnFloorMS:     500,
		SpawnTierStepMS:  200,
		SweepEveryMS:     1200,
		AutoServeBaseMS:  1800,
		AutoServeStepMS:  200,
		BoostDurationMS:  3000,
		RushActiveSecs:   8,
		RushIncomingSecs: 12,
		AuditEveryMS:     15000,

		AuditProb:       0.28,
		AuditRewardBase: 50,
		AuditRewardStep: 25,
		AuditPenalty:    30,
		MaxLicense:      3,

		PrestigeThreshold: 300,

		EventLogCap: 12,
		ShopNameMax: 22,
	}
}

// Classic returns the balance used by the framed variant: slightly rarer
// audits, no rush window.
func Classic() Balance {
	bal := Default()
	bal.AuditProb = 0.25
	bal.SpawnRushBaseMS = bal.SpawnBaseMS
	return bal
}

// BalancePreset resolves a named preset.
func BalancePreset(name string) (Balance, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "classic":
		return Classic(), nil
	default:
		return Balance{}, fmt.Errorf("unknown balance preset %q", name)
	}
}

// LoadBalance reads a YAML balance file over the given base. Missing fields
// keep their base values.
func LoadBalance(path string, base Balance) (Balance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read balance file: %w", err)
	}
	bal := base
	if err := yaml.Unmarshal(raw, &bal); err != nil {
		return base, fmt.Errorf("parse balance file: %w", err)
	}
	return bal, nil
}

// SweepEvery and friends convert the millisecond fields for callers that
// want durations.
func (b Balance) SweepEvery() time.Duration    { return time.Duration(b.SweepEveryMS) * time.Millisecond }
func (b Balance) BoostDuration() time.Duration { return time.Duration(b.BoostDurationMS) * time.Millisecond }
func (b Balance) RushActiveFor() time.Duration { return time.Duration(b.RushActiveSecs) * time.Second }
func (b Balance) RushIncomingFor() time.Duration {
	return time.Duration(b.RushIncomingSecs) * time.Second
}
func (b Balance) AuditEvery() time.Duration { return time.Duration(b.AuditEveryMS) * time.Millisecond }
