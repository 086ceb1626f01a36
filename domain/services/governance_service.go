package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// governanceService implements the GovernanceService interface
type governanceService struct {
	store interfaces.Store
}

// NewGovernanceService creates a new governance service
func NewGovernanceService(store interfaces.Store) interfaces.GovernanceService {
	return &governanceService{store: store}
}

// ListProposals returns all proposals, newest first
func (s *governanceService) ListProposals(ctx context.Context) ([]*entities.GovernanceProposal, error) {
	proposals, err := s.store.Proposals().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// GetProposal retrieves a proposal by id
func (s *governanceService) GetProposal(ctx context.Context, id string) (*entities.GovernanceProposal, error) {
	proposal, err := s.store.Proposals().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get proposal %s: %w", id, err)
	}
	return proposal, nil
}

// CreateProposal validates and creates a proposal with zeroed tallies
func (s *governanceService) CreateProposal(ctx context.Context, input entities.NewGovernanceProposal) (*entities.GovernanceProposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	proposal := &entities.GovernanceProposal{
		Title:       input.Title,
		Description: input.Description,
		Proposer:    input.Proposer,
		Status:      entities.ProposalStatusActive,
		EndDate:     input.EndDate,
	}
	if err := s.store.Proposals().Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return proposal, nil
}

// CastVote applies the voter's reputation-weighted vote. The voter's
// reputation score is rounded half away from zero before it is added to the
// chosen side; the repository keeps totalVotes equal to the sum of both
// sides within the same write.
func (s *governanceService) CastVote(ctx context.Context, proposalID, voterID string, direction entities.VoteDirection) (*entities.GovernanceProposal, error) {
	if !direction.Valid() {
		return nil, entities.NewValidationError("direction", `must be "for" or "against"`)
	}

	voter, err := s.store.Users().GetByID(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up voter %s: %w", voterID, err)
	}
	if voter == nil {
		return nil, fmt.Errorf("voter %s: %w", voterID, entities.ErrNotFound)
	}

	weight := entities.RoundVoteWeight(voter.VoteWeight())
	proposal, err := s.store.Proposals().CastVote(ctx, proposalID, voterID, direction, weight)
	if err != nil {
		return nil, fmt.Errorf("failed to cast vote on proposal %s: %w", proposalID, err)
	}

	log.WithFields(log.Fields{
		"proposalID": proposalID,
		"voterID":    voterID,
		"direction":  direction,
		"weight":     weight,
	}).Info("Vote cast")

	return proposal, nil
}
