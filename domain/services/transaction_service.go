package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

const defaultRecentLimit = 10

// transactionService implements the TransactionService interface
type transactionService struct {
	store interfaces.Store
}

// NewTransactionService creates a new transaction service
func NewTransactionService(store interfaces.Store) interfaces.TransactionService {
	return &transactionService{store: store}
}

// CreateTransaction validates and appends a transaction. When the
// transaction references a micro-app its counter moves by exactly one; the
// increments are in-place so concurrent creates cannot lose updates.
func (s *transactionService) CreateTransaction(ctx context.Context, input entities.NewTransaction) (*entities.Transaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	tx := &entities.Transaction{
		UserID:          input.UserID,
		MicroAppID:      input.MicroAppID,
		Description:     input.Description,
		Amount:          input.Amount,
		Status:          input.Status,
		TransactionHash: input.TransactionHash,
	}
	if err := s.store.Transactions().Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if tx.MicroAppID != nil {
		if err := s.store.MicroApps().IncrementTransactionCount(ctx, *tx.MicroAppID); err != nil {
			log.WithError(err).WithField("microAppID", *tx.MicroAppID).
				Warn("Failed to increment micro-app transaction count")
		}
	}

	if err := s.store.PlatformStats().IncrementTransactionsToday(ctx); err != nil {
		log.WithError(err).Warn("Failed to increment daily transaction count")
	}

	return tx, nil
}

// RecentTransactions returns the newest transactions across all users
func (s *transactionService) RecentTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	txs, err := s.store.Transactions().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	return txs, nil
}

// UserTransactions returns a user's transactions, newest first
func (s *transactionService) UserTransactions(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	txs, err := s.store.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return txs, nil
}
