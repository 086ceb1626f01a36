package entities

import (
	"math"
	"time"
)

// Proposal statuses. Transitions are caller-driven; nothing in the core
// flips a proposal when vote counts cross a threshold or the end date passes.
const (
	ProposalStatusActive   = "Active"
	ProposalStatusPassed   = "Passed"
	ProposalStatusRejected = "Rejected"
	ProposalStatusExpired  = "Expired"
)

// VoteDirection is the side a governance vote lands on.
type VoteDirection string

const (
	VoteFor     VoteDirection = "for"
	VoteAgainst VoteDirection = "against"
)

// Valid reports whether d is a known direction.
func (d VoteDirection) Valid() bool {
	return d == VoteFor || d == VoteAgainst
}

// GovernanceProposal is a votable item with reputation-weighted tallies.
// TotalVotes always equals VotesFor + VotesAgainst; the repositories write it
// as that sum in the same statement as the counter update.
type GovernanceProposal struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Proposer     string    `db:"proposer" json:"proposer"`
	Status       string    `db:"status" json:"status"`
	VotesFor     int64     `db:"votes_for" json:"votesFor"`
	VotesAgainst int64     `db:"votes_against" json:"votesAgainst"`
	TotalVotes   int64     `db:"total_votes" json:"totalVotes"`
	EndDate      time.Time `db:"end_date" json:"endDate"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ForPercentage returns the for-share of the tally rounded to the nearest
// whole percent. Zero when no votes have been cast.
func (p *GovernanceProposal) ForPercentage() int {
	if p.TotalVotes == 0 {
		return 0
	}
	return int(math.Round(float64(p.VotesFor) / float64(p.TotalVotes) * 100))
}

// RoundVoteWeight converts a reputation score into the integer weight added
// to a tally. Halves round away from zero.
func RoundVoteWeight(weight float64) int64 {
	return int64(math.Round(weight))
}

// NewGovernanceProposal holds the fields accepted on create. Tallies always
// start at zero; status defaults to Active.
type NewGovernanceProposal struct {
	Title       string
	Description string
	Proposer    string
	EndDate     time.Time
}

// Validate checks required fields for a proposal create.
func (n *NewGovernanceProposal) Validate() error {
	ve := &ValidationError{}
	if n.Title == "" {
		ve.Add("title", "is required")
	}
	if n.Proposer == "" {
		ve.Add("proposer", "is required")
	}
	if n.EndDate.IsZero() {
		ve.Add("endDate", "is required")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}

// ProposalVote records one voter's weighted vote on one proposal. The
// (ProposalID, VoterID) pair is unique, which is what makes repeat voting
// fail instead of double counting.
type ProposalVote struct {
	ID         string        `db:"id" json:"id"`
	ProposalID string        `db:"proposal_id" json:"proposalId"`
	VoterID    string        `db:"voter_id" json:"voterId"`
	Direction  VoteDirection `db:"direction" json:"direction"`
	Weight     int64         `db:"weight" json:"weight"`
	CreatedAt  time.Time     `db:"created_at" json:"createdAt"`
}
