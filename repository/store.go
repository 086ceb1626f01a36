package repository

import (
	"context"

	"workbindr/database"
	"workbindr/domain/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryable abstracts over a connection pool and a transaction so the same
// repository code runs in either context.
type Queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store implements the interfaces.Store facade over PostgreSQL. Repository
// queries run through backendQueryable so an unreachable backend surfaces as
// entities.ErrBackendUnavailable.
type Store struct {
	db *database.DB
	q  Queryable
}

// NewStore creates the durable storage facade over an open connection pool.
func NewStore(db *database.DB) *Store {
	return &Store{db: db, q: backendQueryable{q: db.Pool}}
}

func (s *Store) Users() interfaces.UserRepository { return &userRepository{q: s.q} }

func (s *Store) MicroApps() interfaces.MicroAppRepository { return &microAppRepository{q: s.q} }

func (s *Store) Transactions() interfaces.TransactionRepository {
	return &transactionRepository{q: s.q}
}

func (s *Store) AiMessages() interfaces.AiMessageRepository {
	return &aiMessageRepository{q: s.q}
}

func (s *Store) Projects() interfaces.ProjectRepository { return &projectRepository{q: s.q} }

func (s *Store) Tasks() interfaces.TaskRepository { return &taskRepository{q: s.q} }

func (s *Store) Donors() interfaces.DonorRepository { return &donorRepository{q: s.q} }

func (s *Store) Proposals() interfaces.GovernanceProposalRepository {
	return &proposalRepository{q: s.q, db: s.db}
}

func (s *Store) Settings() interfaces.DeveloperSettingsRepository {
	return &settingsRepository{q: s.q}
}

func (s *Store) PlatformStats() interfaces.PlatformStatsRepository {
	return &platformStatsRepository{q: s.q}
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.db.Close()
}
