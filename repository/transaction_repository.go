package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// transactionRepository implements the TransactionRepository interface.
// Rows are append-only; there is no update path.
type transactionRepository struct {
	q Queryable
}

const transactionColumns = `id, user_id, micro_app_id, description, amount, status, transaction_hash, created_at`

func scanTransaction(row pgx.Row) (*entities.Transaction, error) {
	var tx entities.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.MicroAppID,
		&tx.Description,
		&tx.Amount,
		&tx.Status,
		&tx.TransactionHash,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Create appends a new transaction
func (r *transactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, micro_app_id, description, amount, status, transaction_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	tx.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		tx.ID,
		tx.UserID,
		tx.MicroAppID,
		tx.Description,
		tx.Amount,
		tx.Status,
		tx.TransactionHash,
	).Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by id
func (r *transactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", id, err)
	}
	return tx, nil
}

// ListByUser returns a user's transactions, newest first
func (r *transactionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListRecent returns the most recent transactions across all users
func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*entities.Transaction, error) {
	var txs []*entities.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}
