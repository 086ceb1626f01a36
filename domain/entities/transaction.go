package entities

import (
	"time"
)

// Transaction statuses as displayed on the dashboard activity feed.
const (
	TransactionStatusPending   = "Pending"
	TransactionStatusConfirmed = "Confirmed"
	TransactionStatusFailed    = "Failed"
)

// Transaction is an append-only activity record. Rows are never updated or
// deleted; only the referenced micro-app's transaction count changes as a
// side effect of creation.
type Transaction struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"userId"`
	MicroAppID      *string   `db:"micro_app_id" json:"microAppId"`
	Description     string    `db:"description" json:"description"`
	Amount          string    `db:"amount" json:"amount"`
	Status          string    `db:"status" json:"status"`
	TransactionHash *string   `db:"transaction_hash" json:"transactionHash"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// NewTransaction holds the fields accepted on create.
type NewTransaction struct {
	UserID          string
	MicroAppID      *string
	Description     string
	Amount          string
	Status          string
	TransactionHash *string
}

// Validate checks required fields for a transaction create.
func (n *NewTransaction) Validate() error {
	ve := &ValidationError{}
	if n.UserID == "" {
		ve.Add("userId", "is required")
	}
	if n.Description == "" {
		ve.Add("description", "is required")
	}
	if n.Amount == "" {
		ve.Add("amount", "is required")
	}
	if n.Status == "" {
		ve.Add("status", "is required")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}
