package entities

import (
	"time"
)

// DefaultSignupReputation is assigned to users created through an
// authentication callback rather than an explicit create call.
const DefaultSignupReputation = 75.0

// User represents a WorkBindr account holder
type User struct {
	ID              string    `db:"id" json:"id"`
	Email           string    `db:"email" json:"email"`
	DisplayName     string    `db:"display_name" json:"displayName"`
	WalletAddress   *string   `db:"wallet_address" json:"walletAddress"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profileImageUrl"`
	ReputationScore float64   `db:"reputation_score" json:"reputationScore"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// VoteWeight returns the weight this user's governance vote carries.
// Reputation never drops below zero, so neither does the weight.
func (u *User) VoteWeight() float64 {
	if u.ReputationScore < 0 {
		return 0
	}
	return u.ReputationScore
}

// UserIdentity is the identity payload supplied by the authentication layer.
// The core stores and reconciles it; it never authenticates.
type UserIdentity struct {
	ID              string
	Email           string
	DisplayName     string
	ProfileImageURL *string
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	DisplayName     *string
	WalletAddress   *string
	ProfileImageURL *string
	ReputationScore *float64
}
