package memstore

import (
	"context"
	"sort"

	"workbindr/domain/entities"
)

type transactionRepository struct {
	s *Store
}

func (r *transactionRepository) Create(_ context.Context, tx *entities.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx.ID = newID()
	tx.CreatedAt = now()
	r.s.transactions[tx.ID] = *tx
	return nil
}

func (r *transactionRepository) GetByID(_ context.Context, id string) (*entities.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	return &tx, nil
}

func (r *transactionRepository) ListByUser(_ context.Context, userID string) ([]*entities.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var txs []*entities.Transaction
	for _, tx := range r.s.transactions {
		if tx.UserID == userID {
			t := tx
			txs = append(txs, &t)
		}
	}
	sortNewestFirst(txs)
	return txs, nil
}

func (r *transactionRepository) ListRecent(_ context.Context, limit int) ([]*entities.Transaction, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	txs := make([]*entities.Transaction, 0, len(r.s.transactions))
	for _, tx := range r.s.transactions {
		t := tx
		txs = append(txs, &t)
	}
	sortNewestFirst(txs)
	if limit > 0 && len(txs) > limit {
		txs = txs[:limit]
	}
	return txs, nil
}

func sortNewestFirst(txs []*entities.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}
