package services

import (
	"context"
	"errors"
	"testing"

	"workbindr/domain/entities"
	"workbindr/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTransactionInput(microAppID *string) entities.NewTransaction {
	return entities.NewTransaction{
		UserID:      "user-1",
		MicroAppID:  microAppID,
		Description: "API call batch",
		Amount:      "0.42",
		Status:      entities.TransactionStatusConfirmed,
	}
}

func TestCreateTransaction_BumpsLinkedMicroAppCounter(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewTransactionService(store)

	appID := "app-1"
	store.TxRepo.On("Create", ctx, mock.AnythingOfType("*entities.Transaction")).Return(nil)
	store.MicroAppRepo.On("IncrementTransactionCount", ctx, "app-1").Return(nil).Once()
	store.StatsRepo.On("IncrementTransactionsToday", ctx).Return(nil).Once()

	tx, err := service.CreateTransaction(ctx, validTransactionInput(&appID))

	require.NoError(t, err)
	assert.Equal(t, "user-1", tx.UserID)
	store.AssertExpectations(t)
}

func TestCreateTransaction_NoMicroAppNoBump(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewTransactionService(store)

	store.TxRepo.On("Create", ctx, mock.AnythingOfType("*entities.Transaction")).Return(nil)
	store.StatsRepo.On("IncrementTransactionsToday", ctx).Return(nil).Once()

	_, err := service.CreateTransaction(ctx, validTransactionInput(nil))

	require.NoError(t, err)
	store.MicroAppRepo.AssertNotCalled(t, "IncrementTransactionCount", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestCreateTransaction_CounterFailureDoesNotFailCreate(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewTransactionService(store)

	appID := "gone"
	store.TxRepo.On("Create", ctx, mock.AnythingOfType("*entities.Transaction")).Return(nil)
	store.MicroAppRepo.On("IncrementTransactionCount", ctx, "gone").Return(entities.ErrNotFound)
	store.StatsRepo.On("IncrementTransactionsToday", ctx).Return(nil)

	tx, err := service.CreateTransaction(ctx, validTransactionInput(&appID))

	require.NoError(t, err)
	assert.NotNil(t, tx)
	store.AssertExpectations(t)
}

func TestCreateTransaction_MissingFields(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewTransactionService(store)

	tx, err := service.CreateTransaction(ctx, entities.NewTransaction{})

	assert.Nil(t, tx)
	var ve *entities.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "userId")
	assert.Contains(t, ve.Fields, "description")
	assert.Contains(t, ve.Fields, "amount")
	assert.Contains(t, ve.Fields, "status")
	store.AssertExpectations(t)
}

func TestRecentTransactions_DefaultsLimit(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewTransactionService(store)

	store.TxRepo.On("ListRecent", ctx, defaultRecentLimit).Return([]*entities.Transaction{}, nil)

	_, err := service.RecentTransactions(ctx, 0)

	require.NoError(t, err)
	store.AssertExpectations(t)
}
