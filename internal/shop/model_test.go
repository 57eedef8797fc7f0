package shop

import (
	"math"
	"testing"

	"blockparty/internal/config"
)

func TestMultiplierWorkedExample(t *testing.T) {
	bal := config.Default()
	got := Multiplier(bal, EconomySnapshot{ProductTier: 1, Combo: 4})
	if math.Abs(got-1.62) > 1e-9 {
		t.Fatalf("multiplier got %v want 1.62", got)
	}
}

func TestEarningsWorkedExample(t *testing.T) {
	bal := config.Default()
	mult := Multiplier(bal, EconomySnapshot{ProductTier: 1, Combo: 4})
	got := Earnings(bal, Customer{Mood: MoodHappy, Spend: 10}, mult)
	if got != 19 {
		t.Fatalf("earnings got %d want 19", got)
	}
}

func TestEarningsRoundsHalfUp(t *testing.T) {
	bal := config.Default()
	// 5 * 1.1 * 1.0 = 5.5 rounds up to 6.
	got := Earnings(bal, Customer{Mood: MoodNeutral, Spend: 5}, 1.1)
	if got != 6 {
		t.Fatalf("earnings got %d want 6", got)
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	bal := config.Default()
	base := EconomySnapshot{ProductTier: 1, Combo: 3, LicenseLevel: 1, Prestige: 1}
	ref := Multiplier(bal, base)

	bumps := []EconomySnapshot{
		{ProductTier: 2, Combo: 3, LicenseLevel: 1, Prestige: 1},
		{ProductTier: 1, Combo: 4, LicenseLevel: 1, Prestige: 1},
		{ProductTier: 1, Combo: 3, LicenseLevel: 2, Prestige: 1},
		{ProductTier: 1, Combo: 3, LicenseLevel: 1, Prestige: 2},
	}
	for i, st := range bumps {
		if got := Multiplier(bal, st); got <= ref {
			t.Fatalf("bump %d: got %v, want > %v", i, got, ref)
		}
	}

	boosted := base
	boosted.Boosting = true
	if got := Multiplier(bal, boosted); got <= ref {
		t.Fatalf("boost did not increase multiplier: %v <= %v", got, ref)
	}
	party := base
	party.PartyBoost = true
	if got := Multiplier(bal, party); got <= ref {
		t.Fatalf("party boost did not increase multiplier: %v <= %v", got, ref)
	}
}

func TestComboBonusCapsAtTen(t *testing.T) {
	bal := config.Default()
	at10 := Multiplier(bal, EconomySnapshot{Combo: 10})
	at15 := Multiplier(bal, EconomySnapshot{Combo: 15})
	if at10 != at15 {
		t.Fatalf("combo bonus should cap at 10: %v != %v", at10, at15)
	}
	if math.Abs(at10-1.5) > 1e-9 {
		t.Fatalf("combo bonus at cap got %v want 1.5", at10)
	}
}

func TestMoodFactor(t *testing.T) {
	bal := config.Default()
	cases := []struct {
		mood Mood
		want float64
	}{
		{MoodHappy, 1.2},
		{MoodNeutral, 1.0},
		{MoodImpatient, 0.7},
	}
	for _, tc := range cases {
		if got := MoodFactor(bal, tc.mood); got != tc.want {
			t.Fatalf("mood %s got %v want %v", tc.mood, got, tc.want)
		}
	}
}

func TestUpgradeCost(t *testing.T) {
	bal := config.Default()
	if got := UpgradeCost(bal, TrackFixtures, 0); got != 40 {
		t.Fatalf("fixtures tier 0 cost got %d want 40", got)
	}
	if got := UpgradeCost(bal, TrackFixtures, 2); got != 120 {
		t.Fatalf("fixtures tier 2 cost got %d want 120", got)
	}
	if got := UpgradeCost(bal, TrackProduct, 1); got != 100 {
		t.Fatalf("product tier 1 cost got %d want 100", got)
	}
}

func TestAuditReward(t *testing.T) {
	bal := config.Default()
	if got := AuditReward(bal, 0); got != 50 {
		t.Fatalf("reward at L0 got %d want 50", got)
	}
	if got := AuditReward(bal, 1); got != 75 {
		t.Fatalf("reward at L1 got %d want 75", got)
	}
}
