package capture

import (
	"strings"
	"testing"
	"time"

	"blockparty/internal/shop"
)

func sampleSnapshot() shop.Snapshot {
	return shop.Snapshot{
		ShopName:     "Neon Nibbles",
		Cash:         120,
		Combo:        4,
		LicenseLevel: 2,
		Prestige:     1,
		Events: []shop.Event{
			{At: time.Now(), Type: shop.EventServe, Value: 19},
			{At: time.Now(), Type: shop.EventBoost},
			{At: time.Now(), Type: shop.EventRestock},
		},
	}
}

func TestReplayCard(t *testing.T) {
	card := ReplayCard(sampleSnapshot())
	for _, want := range []string{"Neon Nibbles", "$120 | Combo 4x | L2 | P1", "Serve +$19", "Boost", "Restock"} {
		if !strings.Contains(card, want) {
			t.Fatalf("replay card missing %q:\n%s", want, card)
		}
	}
}

func TestReplayCardShowsLastSixEvents(t *testing.T) {
	snap := sampleSnapshot()
	snap.Events = nil
	for i := 0; i < 10; i++ {
		snap.Events = append(snap.Events, shop.Event{Type: shop.EventServe, Value: i})
	}
	card := ReplayCard(snap)
	if strings.Contains(card, "Serve +$3") {
		t.Fatalf("older events should be cut:\n%s", card)
	}
	if !strings.Contains(card, "Serve +$9") {
		t.Fatalf("latest event missing:\n%s", card)
	}
}

func TestSelfieCard(t *testing.T) {
	snap := sampleSnapshot()
	snap.Prestige = 0
	card := SelfieCard(snap)
	if !strings.Contains(card, "Block Party Tycoon") {
		t.Fatalf("selfie card missing title:\n%s", card)
	}
	if strings.Contains(card, "| P0") {
		t.Fatalf("zero prestige should be hidden:\n%s", card)
	}
}
