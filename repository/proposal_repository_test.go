package repository

import (
	"context"
	"testing"

	"workbindr/domain/entities"
	"workbindr/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalRepository_CastVote(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	voterA := testutil.CreateTestUserWithReputation("voter-a@example.com", "Voter A", 87.5)
	require.NoError(t, store.Users().Create(ctx, voterA))
	voterB := testutil.CreateTestUserWithReputation("voter-b@example.com", "Voter B", 42.4)
	require.NoError(t, store.Users().Create(ctx, voterB))

	t.Run("tally stays the sum of both sides", func(t *testing.T) {
		proposal := testutil.CreateTestProposal("Reduce call pricing", voterA.ID)
		require.NoError(t, store.Proposals().Create(ctx, proposal))

		updated, err := store.Proposals().CastVote(ctx, proposal.ID, voterA.ID, entities.VoteFor, 88)
		require.NoError(t, err)
		assert.Equal(t, int64(88), updated.VotesFor)
		assert.Equal(t, int64(0), updated.VotesAgainst)
		assert.Equal(t, int64(88), updated.TotalVotes)

		updated, err = store.Proposals().CastVote(ctx, proposal.ID, voterB.ID, entities.VoteAgainst, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(88), updated.VotesFor)
		assert.Equal(t, int64(42), updated.VotesAgainst)
		assert.Equal(t, updated.VotesFor+updated.VotesAgainst, updated.TotalVotes)
	})

	t.Run("repeat vote rolls the tally back", func(t *testing.T) {
		proposal := testutil.CreateTestProposal("Add a second data region", voterA.ID)
		require.NoError(t, store.Proposals().Create(ctx, proposal))

		_, err := store.Proposals().CastVote(ctx, proposal.ID, voterA.ID, entities.VoteFor, 50)
		require.NoError(t, err)

		_, err = store.Proposals().CastVote(ctx, proposal.ID, voterA.ID, entities.VoteAgainst, 50)
		assert.ErrorIs(t, err, entities.ErrAlreadyVoted)

		current, err := store.Proposals().GetByID(ctx, proposal.ID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, int64(50), current.VotesFor)
		assert.Equal(t, int64(0), current.VotesAgainst)
		assert.Equal(t, int64(50), current.TotalVotes)

		vote, err := store.Proposals().GetVote(ctx, proposal.ID, voterA.ID)
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.Equal(t, entities.VoteFor, vote.Direction)
		assert.Equal(t, int64(50), vote.Weight)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		_, err := store.Proposals().CastVote(ctx, "missing", voterA.ID, entities.VoteFor, 10)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("no vote recorded yet", func(t *testing.T) {
		proposal := testutil.CreateTestProposal("Enable weekly digests", voterA.ID)
		require.NoError(t, store.Proposals().Create(ctx, proposal))

		vote, err := store.Proposals().GetVote(ctx, proposal.ID, voterB.ID)
		require.NoError(t, err)
		assert.Nil(t, vote)
	})
}

func TestProposalRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	t.Run("proposal not found", func(t *testing.T) {
		proposal, err := store.Proposals().GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, proposal)
	})

	t.Run("create zeroes the tallies", func(t *testing.T) {
		proposal := testutil.CreateTestProposal("Adopt quarterly reviews", "user-1")
		proposal.VotesFor = 99
		proposal.TotalVotes = 99

		require.NoError(t, store.Proposals().Create(ctx, proposal))
		assert.NotEmpty(t, proposal.ID)
		assert.False(t, proposal.CreatedAt.IsZero())

		stored, err := store.Proposals().GetByID(ctx, proposal.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, int64(0), stored.VotesFor)
		assert.Equal(t, int64(0), stored.VotesAgainst)
		assert.Equal(t, int64(0), stored.TotalVotes)
		assert.Equal(t, entities.ProposalStatusActive, stored.Status)
	})

	t.Run("update status", func(t *testing.T) {
		proposal := testutil.CreateTestProposal("Sunset the legacy API", "user-1")
		require.NoError(t, store.Proposals().Create(ctx, proposal))

		updated, err := store.Proposals().UpdateStatus(ctx, proposal.ID, entities.ProposalStatusPassed)
		require.NoError(t, err)
		assert.Equal(t, entities.ProposalStatusPassed, updated.Status)

		_, err = store.Proposals().UpdateStatus(ctx, "missing", entities.ProposalStatusPassed)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}
