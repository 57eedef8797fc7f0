package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultBalanceConstants(t *testing.T) {
	bal := Default()
	if bal.QueueCap != 5 || bal.SpendMin != 5 || bal.SpendMax != 10 {
		t.Fatalf("queue constants drifted: %+v", bal)
	}
	if bal.SpawnBaseMS != 1400 || bal.SpawnFloorMS != 500 || bal.SweepEveryMS != 1200 {
		t.Fatalf("timer constants drifted: %+v", bal)
	}
	if bal.AuditProb != 0.28 || bal.PrestigeThreshold != 300 {
		t.Fatalf("progression constants drifted: %+v", bal)
	}
	if bal.BoostDuration() != 3*time.Second {
		t.Fatalf("boost duration got %s want 3s", bal.BoostDuration())
	}
	if bal.RushActiveFor() != 8*time.Second || bal.RushIncomingFor() != 12*time.Second {
		t.Fatalf("rush windows drifted: %s / %s", bal.RushActiveFor(), bal.RushIncomingFor())
	}
}

func TestBalancePreset(t *testing.T) {
	classic, err := BalancePreset("classic")
	if err != nil {
		t.Fatal(err)
	}
	if classic.AuditProb != 0.25 {
		t.Fatalf("classic audit prob got %v want 0.25", classic.AuditProb)
	}
	if classic.SpawnRushBaseMS != classic.SpawnBaseMS {
		t.Fatal("classic preset should not shorten spawns during rush")
	}
	if _, err := BalancePreset("turbo"); err == nil {
		t.Fatal("unknown preset must error")
	}
}

func TestLoadBalanceOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	body := "audit_prob: 0.5\nspawn_base_ms: 1000\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	bal, err := LoadBalance(path, Default())
	if err != nil {
		t.Fatal(err)
	}
	if bal.AuditProb != 0.5 || bal.SpawnBaseMS != 1000 {
		t.Fatalf("overrides not applied: %+v", bal)
	}
	// Untouched fields keep their defaults.
	if bal.QueueCap != 5 {
		t.Fatalf("queue cap should stay 5, got %d", bal.QueueCap)
	}
}

func TestLoadBalanceMissingFile(t *testing.T) {
	if _, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"), Default()); err == nil {
		t.Fatal("missing balance file must error")
	}
}
