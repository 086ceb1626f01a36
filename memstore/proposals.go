package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type proposalRepository struct {
	s *Store
}

func (r *proposalRepository) GetByID(_ context.Context, id string) (*entities.GovernanceProposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	proposal, ok := r.s.proposals[id]
	if !ok {
		return nil, nil
	}
	return &proposal, nil
}

func (r *proposalRepository) Create(_ context.Context, proposal *entities.GovernanceProposal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	proposal.ID = newID()
	proposal.CreatedAt = now()
	proposal.VotesFor = 0
	proposal.VotesAgainst = 0
	proposal.TotalVotes = 0
	r.s.proposals[proposal.ID] = *proposal
	return nil
}

func (r *proposalRepository) List(_ context.Context) ([]*entities.GovernanceProposal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	proposals := make([]*entities.GovernanceProposal, 0, len(r.s.proposals))
	for _, proposal := range r.s.proposals {
		p := proposal
		proposals = append(proposals, &p)
	}
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].CreatedAt.After(proposals[j].CreatedAt)
	})
	return proposals, nil
}

// CastVote records the vote and applies its weight under one lock hold, so
// the vote record and the tally can never disagree. The total is always
// written as the sum of both sides.
func (r *proposalRepository) CastVote(_ context.Context, proposalID, voterID string, direction entities.VoteDirection, weight int64) (*entities.GovernanceProposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	proposal, ok := r.s.proposals[proposalID]
	if !ok {
		return nil, fmt.Errorf("proposal %s: %w", proposalID, entities.ErrNotFound)
	}

	key := voteKey{proposalID: proposalID, voterID: voterID}
	if _, voted := r.s.votes[key]; voted {
		return nil, fmt.Errorf("proposal %s voter %s: %w", proposalID, voterID, entities.ErrAlreadyVoted)
	}

	r.s.votes[key] = entities.ProposalVote{
		ID:         newID(),
		ProposalID: proposalID,
		VoterID:    voterID,
		Direction:  direction,
		Weight:     weight,
		CreatedAt:  now(),
	}

	if direction == entities.VoteFor {
		proposal.VotesFor += weight
	} else {
		proposal.VotesAgainst += weight
	}
	proposal.TotalVotes = proposal.VotesFor + proposal.VotesAgainst
	r.s.proposals[proposalID] = proposal
	return &proposal, nil
}

func (r *proposalRepository) GetVote(_ context.Context, proposalID, voterID string) (*entities.ProposalVote, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	vote, ok := r.s.votes[voteKey{proposalID: proposalID, voterID: voterID}]
	if !ok {
		return nil, nil
	}
	return &vote, nil
}

func (r *proposalRepository) UpdateStatus(_ context.Context, id string, status string) (*entities.GovernanceProposal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	proposal, ok := r.s.proposals[id]
	if !ok {
		return nil, fmt.Errorf("proposal %s: %w", id, entities.ErrNotFound)
	}
	proposal.Status = status
	r.s.proposals[id] = proposal
	return &proposal, nil
}
