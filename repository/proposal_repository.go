package repository

import (
	"context"
	"fmt"

	"workbindr/database"
	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// proposalRepository implements the GovernanceProposalRepository interface.
// It keeps a handle on the pool so CastVote can run inside a transaction.
type proposalRepository struct {
	q  Queryable
	db *database.DB
}

const proposalColumns = `id, title, description, proposer, status, votes_for, votes_against, total_votes, end_date, created_at`

func scanProposal(row pgx.Row) (*entities.GovernanceProposal, error) {
	var proposal entities.GovernanceProposal
	err := row.Scan(
		&proposal.ID,
		&proposal.Title,
		&proposal.Description,
		&proposal.Proposer,
		&proposal.Status,
		&proposal.VotesFor,
		&proposal.VotesAgainst,
		&proposal.TotalVotes,
		&proposal.EndDate,
		&proposal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// GetByID retrieves a proposal by id
func (r *proposalRepository) GetByID(ctx context.Context, id string) (*entities.GovernanceProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM governance_proposals WHERE id = $1`

	proposal, err := scanProposal(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal %s: %w", id, err)
	}
	return proposal, nil
}

// Create creates a new proposal with zeroed tallies
func (r *proposalRepository) Create(ctx context.Context, proposal *entities.GovernanceProposal) error {
	query := `
		INSERT INTO governance_proposals (id, title, description, proposer, status, votes_for, votes_against, total_votes, end_date)
		VALUES ($1, $2, $3, $4, $5, 0, 0, 0, $6)
		RETURNING created_at
	`

	proposal.ID = uuid.NewString()
	proposal.VotesFor = 0
	proposal.VotesAgainst = 0
	proposal.TotalVotes = 0
	err := r.q.QueryRow(ctx, query,
		proposal.ID,
		proposal.Title,
		proposal.Description,
		proposal.Proposer,
		proposal.Status,
		proposal.EndDate,
	).Scan(&proposal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create proposal: %w", err)
	}
	return nil
}

// List returns all proposals, newest first
func (r *proposalRepository) List(ctx context.Context) ([]*entities.GovernanceProposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM governance_proposals ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*entities.GovernanceProposal
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		proposals = append(proposals, proposal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate proposals: %w", err)
	}
	return proposals, nil
}

// CastVote applies the voter's weight to the tally and records the vote in a
// single transaction. The tally update writes total_votes as the sum of the
// two counters, and the unique (proposal_id, voter_id) index on
// proposal_votes rejects repeat votes, rolling the tally change back with the
// transaction.
func (r *proposalRepository) CastVote(ctx context.Context, proposalID, voterID string, direction entities.VoteDirection, weight int64) (*entities.GovernanceProposal, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin vote transaction: %w", markUnavailable(err))
	}
	defer tx.Rollback(ctx)
	q := backendQueryable{q: tx}

	var forDelta, againstDelta int64
	if direction == entities.VoteFor {
		forDelta = weight
	} else {
		againstDelta = weight
	}

	// Column references on the right-hand side read the pre-update values,
	// so total_votes lands on the new votes_for + votes_against.
	tallyQuery := `
		UPDATE governance_proposals SET
			votes_for = votes_for + $2,
			votes_against = votes_against + $3,
			total_votes = votes_for + votes_against + $2 + $3
		WHERE id = $1
		RETURNING ` + proposalColumns + `
	`

	proposal, err := scanProposal(q.QueryRow(ctx, tallyQuery, proposalID, forDelta, againstDelta))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("proposal %s: %w", proposalID, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tally for proposal %s: %w", proposalID, err)
	}

	voteQuery := `
		INSERT INTO proposal_votes (id, proposal_id, voter_id, direction, weight)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (proposal_id, voter_id) DO NOTHING
	`

	result, err := q.Exec(ctx, voteQuery, uuid.NewString(), proposalID, voterID, direction, weight)
	if err != nil {
		return nil, fmt.Errorf("failed to record vote on proposal %s: %w", proposalID, err)
	}
	if result.RowsAffected() == 0 {
		return nil, fmt.Errorf("voter %s on proposal %s: %w", voterID, proposalID, entities.ErrAlreadyVoted)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit vote transaction: %w", markUnavailable(err))
	}
	return proposal, nil
}

// GetVote returns a voter's recorded vote on a proposal, nil if none
func (r *proposalRepository) GetVote(ctx context.Context, proposalID, voterID string) (*entities.ProposalVote, error) {
	query := `
		SELECT id, proposal_id, voter_id, direction, weight, created_at
		FROM proposal_votes
		WHERE proposal_id = $1 AND voter_id = $2
	`

	var vote entities.ProposalVote
	err := r.q.QueryRow(ctx, query, proposalID, voterID).Scan(
		&vote.ID,
		&vote.ProposalID,
		&vote.VoterID,
		&vote.Direction,
		&vote.Weight,
		&vote.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vote on proposal %s: %w", proposalID, err)
	}
	return &vote, nil
}

// UpdateStatus sets the caller-driven proposal status
func (r *proposalRepository) UpdateStatus(ctx context.Context, id string, status string) (*entities.GovernanceProposal, error) {
	query := `
		UPDATE governance_proposals SET status = $2
		WHERE id = $1
		RETURNING ` + proposalColumns + `
	`

	proposal, err := scanProposal(r.q.QueryRow(ctx, query, id, status))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("proposal %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update status for proposal %s: %w", id, err)
	}
	return proposal, nil
}
