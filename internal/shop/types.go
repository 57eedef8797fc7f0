package shop

// Snapshot is the read-only view renderers consume. Everything is copied;
// mutating a snapshot never touches live state.
type Snapshot struct {
	ShopName     string     `json:"shop_name"`
	Cash         int        `json:"cash"`
	Combo        int        `json:"combo"`
	FixturesTier int        `json:"fixtures_tier"`
	ProductTier  int        `json:"product_tier"`
	LicenseLevel int        `json:"license_level"`
	Prestige     int        `json:"prestige"`
	AutoStaff    bool       `json:"auto_staff"`
	Boosting     bool       `json:"boosting"`
	PartyBoost   bool       `json:"party_boost"`
	RushActive   bool       `json:"rush_active"`
	Multiplier   float64    `json:"multiplier"`
	FixturesCost int        `json:"fixtures_cost"`
	ProductCost  int        `json:"product_cost"`
	Queue        []Customer `json:"queue"`
	Audit        *AuditView `json:"audit,omitempty"`
	Events       []Event    `json:"events"`
}

// AuditView exposes the open audit question without its answer key.
type AuditView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}
