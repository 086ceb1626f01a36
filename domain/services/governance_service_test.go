package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"workbindr/domain/entities"
	"workbindr/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCastVote_RoundsReputationHalfAwayFromZero(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	voter := &entities.User{ID: "user-1", ReputationScore: 87.5}
	updated := &entities.GovernanceProposal{
		ID:           "prop-1",
		VotesFor:     88,
		VotesAgainst: 0,
		TotalVotes:   88,
	}

	store.UserRepo.On("GetByID", ctx, "user-1").Return(voter, nil)
	store.ProposalRepo.On("CastVote", ctx, "prop-1", "user-1", entities.VoteFor, int64(88)).
		Return(updated, nil)

	proposal, err := service.CastVote(ctx, "prop-1", "user-1", entities.VoteFor)

	require.NoError(t, err)
	assert.Equal(t, int64(88), proposal.VotesFor)
	assert.Equal(t, int64(0), proposal.VotesAgainst)
	assert.Equal(t, proposal.VotesFor+proposal.VotesAgainst, proposal.TotalVotes)
	store.AssertExpectations(t)
}

func TestCastVote_AgainstAppliesWeightToAgainstOnly(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	voter := &entities.User{ID: "user-2", ReputationScore: 42.4}
	updated := &entities.GovernanceProposal{
		ID:           "prop-1",
		VotesFor:     0,
		VotesAgainst: 42,
		TotalVotes:   42,
	}

	store.UserRepo.On("GetByID", ctx, "user-2").Return(voter, nil)
	store.ProposalRepo.On("CastVote", ctx, "prop-1", "user-2", entities.VoteAgainst, int64(42)).
		Return(updated, nil)

	proposal, err := service.CastVote(ctx, "prop-1", "user-2", entities.VoteAgainst)

	require.NoError(t, err)
	assert.Equal(t, int64(42), proposal.VotesAgainst)
	store.AssertExpectations(t)
}

func TestCastVote_InvalidDirection(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	proposal, err := service.CastVote(ctx, "prop-1", "user-1", "abstain")

	assert.Nil(t, proposal)
	assert.True(t, entities.IsValidation(err))
	store.AssertExpectations(t)
}

func TestCastVote_UnknownVoter(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	store.UserRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	proposal, err := service.CastVote(ctx, "prop-1", "ghost", entities.VoteFor)

	assert.Nil(t, proposal)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	store.AssertExpectations(t)
}

func TestCastVote_RepeatVotePassesThroughConflict(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	voter := &entities.User{ID: "user-1", ReputationScore: 50}
	store.UserRepo.On("GetByID", ctx, "user-1").Return(voter, nil)
	store.ProposalRepo.On("CastVote", ctx, "prop-1", "user-1", entities.VoteFor, int64(50)).
		Return(nil, entities.ErrAlreadyVoted)

	proposal, err := service.CastVote(ctx, "prop-1", "user-1", entities.VoteFor)

	assert.Nil(t, proposal)
	assert.ErrorIs(t, err, entities.ErrAlreadyVoted)
	store.AssertExpectations(t)
}

func TestCastVote_NegativeReputationCountsAsZero(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	voter := &entities.User{ID: "user-3", ReputationScore: -12.5}
	updated := &entities.GovernanceProposal{ID: "prop-1"}

	store.UserRepo.On("GetByID", ctx, "user-3").Return(voter, nil)
	store.ProposalRepo.On("CastVote", ctx, "prop-1", "user-3", entities.VoteFor, int64(0)).
		Return(updated, nil)

	_, err := service.CastVote(ctx, "prop-1", "user-3", entities.VoteFor)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCreateProposal_Defaults(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	store.ProposalRepo.On("Create", ctx, mock.MatchedBy(func(p *entities.GovernanceProposal) bool {
		return p.Status == entities.ProposalStatusActive &&
			p.VotesFor == 0 && p.VotesAgainst == 0 && p.TotalVotes == 0
	})).Return(nil)

	proposal, err := service.CreateProposal(ctx, entities.NewGovernanceProposal{
		Title:    "Adopt quarterly budget reviews",
		Proposer: "user-1",
		EndDate:  time.Now().Add(72 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, entities.ProposalStatusActive, proposal.Status)
	store.AssertExpectations(t)
}

func TestCreateProposal_MissingFields(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewGovernanceService(store)

	proposal, err := service.CreateProposal(ctx, entities.NewGovernanceProposal{})

	assert.Nil(t, proposal)
	var ve *entities.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "proposer")
	assert.Contains(t, ve.Fields, "endDate")
	store.AssertExpectations(t)
}
