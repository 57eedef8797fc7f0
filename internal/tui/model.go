// Package tui is a terminal renderer for the simulation. It polls
// read-only snapshots on a short tick and translates key presses into
// service actions; no game logic lives here.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"blockparty/internal/shop"
)

type tickMsg time.Time

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	alertStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

type Model struct {
	svc         *shop.Service
	snap        shop.Snapshot
	nameInput   textinput.Model
	editingName bool
	status      string
}

func New(svc *shop.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "Shop name"
	ti.CharLimit = 22
	return Model{svc: svc, snap: svc.Snapshot(), nameInput: ti}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.snap = m.svc.Snapshot()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingName {
		switch msg.Type {
		case tea.KeyEnter:
			m.svc.SetShopName(strings.TrimSpace(m.nameInput.Value()))
			m.editingName = false
		case tea.KeyEsc:
			m.editingName = false
		default:
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		m.snap = m.svc.Snapshot()
		return m, nil
	}

	if m.snap.Audit != nil {
		switch msg.String() {
		case "1", "2", "3":
			choice := int(msg.String()[0] - '1')
			if passed, ok := m.svc.SubmitAudit(choice); ok {
				if passed {
					m.status = "Audit passed! License secured."
				} else {
					m.status = "Audit failed."
				}
			}
		case "x":
			m.svc.FailAudit()
			m.status = "Audit failed."
		case "esc", "d":
			m.svc.DismissAudit()
			m.status = "Audit postponed."
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		m.snap = m.svc.Snapshot()
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "s":
		if earned, ok := m.svc.Serve(false); ok {
			m.status = fmt.Sprintf("Served +$%d", earned)
		} else {
			m.status = "Nobody in line."
		}
	case "r":
		m.svc.Restock()
		m.status = "Restocked, combo reset."
	case "b":
		if m.svc.StartBoost() {
			m.status = "Boosting!"
		}
	case "f":
		if m.svc.PurchaseUpgrade(shop.TrackFixtures) {
			m.status = "Fixtures upgraded."
		} else {
			m.status = "Can't upgrade fixtures."
		}
	case "p":
		if m.svc.PurchaseUpgrade(shop.TrackProduct) {
			m.status = "Product upgraded."
		} else {
			m.status = "Can't upgrade product."
		}
	case "a":
		if m.svc.ToggleAutoStaff() {
			m.status = "Auto staff on."
		} else {
			m.status = "Auto staff off."
		}
	case "c":
		m.svc.SetPartyBoost(!m.snap.PartyBoost)
	case "g":
		if m.svc.PrestigeReset() {
			m.status = "Prestige! The block remembers."
		} else {
			m.status = "Need more cash to prestige."
		}
	case "n":
		m.editingName = true
		m.nameInput.SetValue(m.snap.ShopName)
		m.nameInput.Focus()
		return m, textinput.Blink
	}
	m.snap = m.svc.Snapshot()
	return m, nil
}

func (m Model) View() string {
	snap := m.snap

	header := headerStyle.Render(snap.ShopName) +
		dimStyle.Render(fmt.Sprintf("  $%d  %dx combo  L%d  P%d  x%.2f",
			snap.Cash, snap.Combo, snap.LicenseLevel, snap.Prestige, snap.Multiplier))
	if snap.RushActive {
		header += "  " + alertStyle.Render("RUSH HOUR")
	}
	if snap.Boosting {
		header += "  " + activeStyle.Render("BOOST")
	}
	if snap.PartyBoost {
		header += "  " + activeStyle.Render("CO-OP")
	}

	var cards []string
	for _, c := range snap.Queue {
		cards = append(cards, cardStyle.Render(fmt.Sprintf("%s\n$%d", moodFace(c.Mood), c.Spend)))
	}
	queueRow := dimStyle.Render("Waiting for customers...")
	if len(cards) > 0 {
		queueRow = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	upgrades := fmt.Sprintf("Fixtures T%d", snap.FixturesTier)
	if snap.FixturesCost > 0 {
		upgrades += fmt.Sprintf(" ($%d)", snap.FixturesCost)
	}
	upgrades += fmt.Sprintf("   Product T%d", snap.ProductTier)
	if snap.ProductCost > 0 {
		upgrades += fmt.Sprintf(" ($%d)", snap.ProductCost)
	}
	upgrades += fmt.Sprintf("   Auto staff: %s", onOff(snap.AutoStaff))

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(queueRow),
		panelStyle.Render(upgrades),
	)

	if m.editingName {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			panelStyle.Render("Rename shop: "+m.nameInput.View()))
	}

	if snap.Audit != nil {
		var opts strings.Builder
		for i, o := range snap.Audit.Options {
			fmt.Fprintf(&opts, "  %d) %s\n", i+1, o)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			panelStyle.Render(alertStyle.Render("Ms. Ledger's Audit")+"\n"+
				snap.Audit.Prompt+"\n"+opts.String()+
				dimStyle.Render("1-3 answer  x fail  d not now")))
	}

	help := dimStyle.Render("s serve  r restock  b boost  f/p upgrade  a staff  c co-op  g prestige  n rename  q quit")
	if m.status != "" {
		help = m.status + "\n" + help
	}
	return body + "\n" + help + "\n"
}

func moodFace(mood shop.Mood) string {
	switch mood {
	case shop.MoodHappy:
		return "😊"
	case shop.MoodImpatient:
		return "😠"
	default:
		return "🙂"
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
