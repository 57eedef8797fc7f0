package shop

import (
	"log/slog"
	mathrand "math/rand"
	"sync"
	"time"

	"blockparty/internal/config"
	"blockparty/internal/save"
)

const defaultShopName = "Neon Nibbles"

// Service owns the whole game state: progression, queue, audit session and
// event log. Every mutation goes through one mutex, so timer callbacks and
// user intents never interleave inside a compound update. The RNG is also
// guarded by that mutex; a fixed seed replays a session deterministically.
type Service struct {
	mu    sync.Mutex
	log   *slog.Logger
	bal   config.Balance
	rng   *mathrand.Rand
	store save.Store

	shopName     string
	cash         int
	combo        int
	fixturesTier int
	productTier  int
	licenseLevel int
	prestige     int
	autoStaff    bool
	boosting     bool
	partyBoost   bool
	rushActive   bool

	queue  Queue
	audit  *auditSession
	events []Event

	boostTimer *time.Timer
	closed     bool
}

// NewService restores the persisted progression snapshot (tolerating a
// missing or corrupt save) and resets session-only state. seed=0 picks a
// time-based seed.
func NewService(bal config.Balance, store save.Store, logger *slog.Logger, seed int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Service{
		log:      logger,
		bal:      bal,
		rng:      mathrand.New(mathrand.NewSource(seed)),
		store:    store,
		shopName: defaultShopName,
		queue:    NewQueue(bal.QueueCap),
	}
	if snap, ok := store.Load(); ok {
		s.cash = clampMin(snap.Cash, 0)
		s.fixturesTier = clampRange(snap.FixturesTier, 0, bal.MaxTier)
		s.productTier = clampRange(snap.ProductTier, 0, bal.MaxTier)
		s.prestige = clampMin(snap.Prestige, 0)
		logger.Info("restored save", "cash", s.cash, "fixtures_tier", s.fixturesTier,
			"product_tier", s.productTier, "prestige", s.prestige)
	}
	return s
}

// Balance returns the tuning table the service was built with.
func (s *Service) Balance() config.Balance {
	return s.bal
}

// Serve hands the front customer their order and credits the earnings.
// Passive serves (auto staff) still earn and build combo but stay out of
// the replay log. Returns the amount earned and whether anyone was served.
func (s *Service) Serve(passive bool) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serveLocked(passive)
}

func (s *Service) serveLocked(passive bool) (int, bool) {
	if s.closed {
		return 0, false
	}
	c, ok := s.queue.ServeFront()
	if !ok {
		return 0, false
	}
	earned := Earnings(s.bal, c, s.multiplierLocked())
	s.cash += earned
	if s.combo < s.bal.ComboCap {
		s.combo++
	}
	if !passive {
		s.logEventLocked(EventServe, earned)
	}
	s.persistLocked()
	return earned, true
}

// Restock resets the combo counter. Cash is untouched.
func (s *Service) Restock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.combo = 0
	s.logEventLocked(EventRestock, 0)
}

// StartBoost opens the timed earnings window. A boost already running
// cannot be stacked or extended.
func (s *Service) StartBoost() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.boosting {
		return false
	}
	s.boosting = true
	s.logEventLocked(EventBoost, 0)
	s.boostTimer = time.AfterFunc(s.bal.BoostDuration(), s.expireBoost)
	return true
}

func (s *Service) expireBoost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boosting = false
	s.boostTimer = nil
}

// PurchaseUpgrade advances one upgrade track when affordable and below the
// tier cap. Rejected attempts change nothing; redundant calls are safe.
func (s *Service) PurchaseUpgrade(track UpgradeTrack) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	tier := &s.fixturesTier
	if track == TrackProduct {
		tier = &s.productTier
	}
	if *tier >= s.bal.MaxTier {
		return false
	}
	cost := UpgradeCost(s.bal, track, *tier)
	if s.cash < cost {
		return false
	}
	s.cash -= cost
	*tier++
	s.persistLocked()
	return true
}

// ToggleAutoStaff flips passive serving and returns the new value.
func (s *Service) ToggleAutoStaff() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.autoStaff
	}
	s.autoStaff = !s.autoStaff
	return s.autoStaff
}

func (s *Service) SetPartyBoost(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.partyBoost = on
}

// PrestigeReset trades all cash and tier progress for a permanent
// multiplier step. Rejected below the threshold.
func (s *Service) PrestigeReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.cash < s.bal.PrestigeThreshold {
		return false
	}
	s.cash = 0
	s.fixturesTier = 0
	s.productTier = 0
	s.combo = 0
	s.prestige++
	s.logEventLocked(EventPrestige, s.prestige)
	s.persistLocked()
	return true
}

// SetShopName trims the name to the display cap. Empty input keeps the
// current name.
func (s *Service) SetShopName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || name == "" {
		return
	}
	runes := []rune(name)
	if len(runes) > s.bal.ShopNameMax {
		runes = runes[:s.bal.ShopNameMax]
	}
	s.shopName = string(runes)
}

// SpawnCustomer appends a freshly drawn customer, dropping the oldest
// entries past the queue cap.
func (s *Service) SpawnCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	c := NewCustomer(s.rng, s.bal)
	if dropped := s.queue.Push(c); dropped > 0 {
		s.log.Debug("queue overflow", "dropped", dropped)
	}
}

// SweepAbandonment runs the per-tick walk-away check on the front customer.
func (s *Service) SweepAbandonment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if c, left := s.queue.SweepFront(s.rng, s.bal.AbandonProb); left {
		s.log.Debug("customer abandoned", "id", c.ID)
	}
}

// AutoServe performs one passive serve when auto staff is on.
func (s *Service) AutoServe() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.autoStaff {
		return
	}
	s.serveLocked(true)
}

// AutoStaffEnabled reports the passive-serving flag for the scheduler.
func (s *Service) AutoStaffEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoStaff
}

// SpawnPeriod is the current customer arrival interval: fixtures shorten
// it, an active rush window shortens the base, and it never drops below the
// floor.
func (s *Service) SpawnPeriod() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := s.bal.SpawnBaseMS
	if s.rushActive {
		base = s.bal.SpawnRushBaseMS
	}
	ms := base - s.fixturesTier*s.bal.SpawnTierStepMS
	if ms < s.bal.SpawnFloorMS {
		ms = s.bal.SpawnFloorMS
	}
	return time.Duration(ms) * time.Millisecond
}

// AutoServePeriod is the passive-serve interval; product tier shortens it.
func (s *Service) AutoServePeriod() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.bal.AutoServeBaseMS - s.productTier*s.bal.AutoServeStepMS
	return time.Duration(ms) * time.Millisecond
}

// AdvanceRush flips the rush window and returns the new state plus how long
// it lasts.
func (s *Service) AdvanceRush() (bool, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.rushActive, s.bal.RushIncomingFor()
	}
	s.rushActive = !s.rushActive
	if s.rushActive {
		return true, s.bal.RushActiveFor()
	}
	return false, s.bal.RushIncomingFor()
}

// OpenAudit opens the audit modal with a fresh random question. No-op while
// one is already open; gameplay timers keep running underneath.
func (s *Service) OpenAudit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.audit != nil {
		return false
	}
	s.audit = &auditSession{question: pickQuestion(s.rng)}
	return true
}

// MaybeOpenAudit rolls the periodic inspection chance.
func (s *Service) MaybeOpenAudit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.audit != nil {
		return false
	}
	if s.rng.Float64() >= s.bal.AuditProb {
		return false
	}
	s.audit = &auditSession{question: pickQuestion(s.rng)}
	return true
}

// SubmitAudit resolves the open audit against the chosen option. Returns
// (passed, resolved); resolved is false when no audit is open or the choice
// is out of range.
func (s *Service) SubmitAudit(choice int) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.audit == nil {
		return false, false
	}
	q := s.audit.question
	if choice < 0 || choice >= len(q.Options) {
		return false, false
	}
	s.audit = nil
	if choice == q.Correct {
		s.passAuditLocked()
		return true, true
	}
	s.failAuditLocked()
	return false, true
}

// FailAudit is the voluntary decline: same penalty as a wrong answer.
func (s *Service) FailAudit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.audit == nil {
		return
	}
	s.audit = nil
	s.failAuditLocked()
}

// DismissAudit closes the modal with no reward or penalty.
func (s *Service) DismissAudit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = nil
}

func (s *Service) passAuditLocked() {
	reward := AuditReward(s.bal, s.licenseLevel)
	s.cash += reward
	if s.licenseLevel < s.bal.MaxLicense {
		s.licenseLevel++
	}
	s.logEventLocked(EventAuditPass, reward)
	s.persistLocked()
}

func (s *Service) failAuditLocked() {
	s.cash -= s.bal.AuditPenalty
	if s.cash < 0 {
		s.cash = 0
	}
	s.logEventLocked(EventAuditFail, s.bal.AuditPenalty)
	s.persistLocked()
}

// Snapshot copies the current state for renderers and capture.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ShopName:     s.shopName,
		Cash:         s.cash,
		Combo:        s.combo,
		FixturesTier: s.fixturesTier,
		ProductTier:  s.productTier,
		LicenseLevel: s.licenseLevel,
		Prestige:     s.prestige,
		AutoStaff:    s.autoStaff,
		Boosting:     s.boosting,
		PartyBoost:   s.partyBoost,
		RushActive:   s.rushActive,
		Multiplier:   s.multiplierLocked(),
		Queue:        s.queue.Customers(),
		Events:       append([]Event(nil), s.events...),
	}
	if s.fixturesTier < s.bal.MaxTier {
		snap.FixturesCost = UpgradeCost(s.bal, TrackFixtures, s.fixturesTier)
	}
	if s.productTier < s.bal.MaxTier {
		snap.ProductCost = UpgradeCost(s.bal, TrackProduct, s.productTier)
	}
	if s.audit != nil {
		snap.Audit = &AuditView{
			Prompt:  s.audit.question.Prompt,
			Options: append([]string(nil), s.audit.question.Options...),
		}
	}
	return snap
}

// Close tears the game down. Pending boost expiry is cancelled and every
// later action becomes a no-op. Safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.boostTimer != nil {
		s.boostTimer.Stop()
		s.boostTimer = nil
	}
	s.boosting = false
}

func (s *Service) multiplierLocked() float64 {
	return Multiplier(s.bal, EconomySnapshot{
		ProductTier:  s.productTier,
		Combo:        s.combo,
		LicenseLevel: s.licenseLevel,
		Prestige:     s.prestige,
		Boosting:     s.boosting,
		PartyBoost:   s.partyBoost,
	})
}

func (s *Service) persistLocked() {
	err := s.store.Save(save.Snapshot{
		Cash:         s.cash,
		FixturesTier: s.fixturesTier,
		ProductTier:  s.productTier,
		Prestige:     s.prestige,
	})
	if err != nil {
		s.log.Warn("save snapshot failed", "err", err)
	}
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func clampRange(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
