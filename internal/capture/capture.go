// Package capture renders shareable text cards from a state snapshot. This
// replaces the original canvas screenshots; nothing here affects the sim.
package capture

import (
	"fmt"
	"strings"

	"blockparty/internal/shop"
)

// ReplayCard shows the header line plus the last few replay events.
func ReplayCard(snap shop.Snapshot) string {
	var b strings.Builder
	writeHeader(&b, snap)
	b.WriteString("Rush Replay\n")
	events := snap.Events
	if len(events) > 6 {
		events = events[len(events)-6:]
	}
	if len(events) == 0 {
		b.WriteString("  (quiet so far)\n")
	}
	for _, e := range events {
		b.WriteString("  " + eventLabel(e) + "\n")
	}
	return b.String()
}

// SelfieCard is the plain framed variant.
func SelfieCard(snap shop.Snapshot) string {
	var b strings.Builder
	writeHeader(&b, snap)
	b.WriteString("Block Party Tycoon\n")
	return b.String()
}

func writeHeader(b *strings.Builder, snap shop.Snapshot) {
	fmt.Fprintf(b, "%s\n", snap.ShopName)
	fmt.Fprintf(b, "$%d | Combo %dx | L%d", snap.Cash, snap.Combo, snap.LicenseLevel)
	if snap.Prestige > 0 {
		fmt.Fprintf(b, " | P%d", snap.Prestige)
	}
	b.WriteString("\n")
}

func eventLabel(e shop.Event) string {
	switch e.Type {
	case shop.EventServe:
		return fmt.Sprintf("Serve +$%d", e.Value)
	case shop.EventBoost:
		return "Boost"
	case shop.EventRestock:
		return "Restock"
	case shop.EventAuditPass:
		return fmt.Sprintf("Audit passed +$%d", e.Value)
	case shop.EventAuditFail:
		return fmt.Sprintf("Audit failed -$%d", e.Value)
	case shop.EventPrestige:
		return fmt.Sprintf("Prestige %d", e.Value)
	default:
		return string(e.Type)
	}
}
