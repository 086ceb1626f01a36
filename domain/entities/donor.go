package entities

import (
	"time"
)

// Donor tracks a funding relationship managed from the dashboard.
type Donor struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	TotalDonated  string    `db:"total_donated" json:"totalDonated"`
	DonationCount int       `db:"donation_count" json:"donationCount"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// NewDonor holds the fields accepted on create.
type NewDonor struct {
	Name         string
	Email        string
	TotalDonated string
	Status       string
}

// Validate checks required fields for a donor create.
func (n *NewDonor) Validate() error {
	if n.Name == "" {
		return NewValidationError("name", "is required")
	}
	return nil
}

// DonorUpdate carries a partial update; nil fields are left untouched.
type DonorUpdate struct {
	Name          *string
	Email         *string
	TotalDonated  *string
	DonationCount *int
	Status        *string
}
