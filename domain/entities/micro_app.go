package entities

import (
	"time"
)

// MicroApp is a named feature module surfaced on the dashboard.
// TransactionCount is monotonically non-decreasing; it only moves when a
// transaction referencing the app is created.
type MicroApp struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Description      string    `db:"description" json:"description"`
	Version          string    `db:"version" json:"version"`
	APISchema        string    `db:"api_schema" json:"apiSchema"`
	Icon             string    `db:"icon" json:"icon"`
	Color            string    `db:"color" json:"color"`
	IsActive         bool      `db:"is_active" json:"isActive"`
	TransactionCount int       `db:"transaction_count" json:"transactionCount"`
	Rating           float64   `db:"rating" json:"rating"`
	ReviewCount      int       `db:"review_count" json:"reviewCount"`
	PricePerCall     string    `db:"price_per_call" json:"pricePerCall"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// NewMicroApp holds the fields accepted on create. Omitted optional fields
// receive defaults: active, zero counters.
type NewMicroApp struct {
	Name         string
	Description  string
	Version      string
	APISchema    string
	Icon         string
	Color        string
	IsActive     *bool
	PricePerCall string
}

// Validate checks required fields for a micro-app create.
func (n *NewMicroApp) Validate() error {
	ve := &ValidationError{}
	if n.Name == "" {
		ve.Add("name", "is required")
	}
	if n.Version == "" {
		ve.Add("version", "is required")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}
