package interfaces

import (
	"context"

	"workbindr/domain/entities"
)

// Store is the storage facade consumed by services and handlers. Two
// implementations satisfy it: the PostgreSQL-backed repository.Store and the
// process-lifetime memstore.Store. The backend is chosen once at startup and
// passed explicitly to whatever needs it.
type Store interface {
	Users() UserRepository
	MicroApps() MicroAppRepository
	Transactions() TransactionRepository
	AiMessages() AiMessageRepository
	Projects() ProjectRepository
	Tasks() TaskRepository
	Donors() DonorRepository
	Proposals() GovernanceProposalRepository
	Settings() DeveloperSettingsRepository
	PlatformStats() PlatformStatsRepository

	// Close releases backend resources. Safe to call once at shutdown.
	Close()
}

// UserRepository defines the interface for user data access.
// Reads return (nil, nil) when the record does not exist.
type UserRepository interface {
	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entities.User, error)

	// Create creates a new user with defaults applied
	Create(ctx context.Context, user *entities.User) error

	// Upsert reconciles an identity from an auth callback: insert on first
	// login, refresh profile fields on every later one
	Upsert(ctx context.Context, identity entities.UserIdentity, defaultReputation float64) (*entities.User, error)

	// Update merges a partial update over an existing user
	Update(ctx context.Context, id string, update entities.UserUpdate) (*entities.User, error)

	// List returns all users, newest first
	List(ctx context.Context) ([]*entities.User, error)
}

// MicroAppRepository defines the interface for micro-app data access
type MicroAppRepository interface {
	// GetByID retrieves a micro-app by id
	GetByID(ctx context.Context, id string) (*entities.MicroApp, error)

	// Create creates a new micro-app
	Create(ctx context.Context, app *entities.MicroApp) error

	// List returns all micro-apps
	List(ctx context.Context) ([]*entities.MicroApp, error)

	// IncrementTransactionCount bumps the counter in place, atomically on
	// the durable backend
	IncrementTransactionCount(ctx context.Context, id string) error
}

// TransactionRepository defines the interface for the append-only
// transaction feed
type TransactionRepository interface {
	// Create appends a new transaction
	Create(ctx context.Context, tx *entities.Transaction) error

	// GetByID retrieves a transaction by id
	GetByID(ctx context.Context, id string) (*entities.Transaction, error)

	// ListByUser returns a user's transactions, newest first
	ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error)

	// ListRecent returns the most recent transactions across all users
	ListRecent(ctx context.Context, limit int) ([]*entities.Transaction, error)
}

// AiMessageRepository defines the interface for assistant exchange history
type AiMessageRepository interface {
	// Create persists one assistant exchange
	Create(ctx context.Context, msg *entities.AiMessage) error

	// ListByUser returns a user's exchanges in conversation order
	ListByUser(ctx context.Context, userID string) ([]*entities.AiMessage, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// GetByID retrieves a project by id
	GetByID(ctx context.Context, id string) (*entities.Project, error)

	// Create creates a new project
	Create(ctx context.Context, project *entities.Project) error

	// Update merges a partial update over an existing project
	Update(ctx context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error)

	// List returns all projects, newest first
	List(ctx context.Context) ([]*entities.Project, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// GetByID retrieves a task by id
	GetByID(ctx context.Context, id string) (*entities.Task, error)

	// Create creates a new task
	Create(ctx context.Context, task *entities.Task) error

	// Update merges a partial update over an existing task
	Update(ctx context.Context, id string, update entities.TaskUpdate) (*entities.Task, error)

	// List returns all tasks, newest first
	List(ctx context.Context) ([]*entities.Task, error)

	// ListByProject returns a project's tasks, newest first
	ListByProject(ctx context.Context, projectID string) ([]*entities.Task, error)
}

// DonorRepository defines the interface for donor data access
type DonorRepository interface {
	// GetByID retrieves a donor by id
	GetByID(ctx context.Context, id string) (*entities.Donor, error)

	// Create creates a new donor
	Create(ctx context.Context, donor *entities.Donor) error

	// Update merges a partial update over an existing donor
	Update(ctx context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error)

	// List returns all donors, newest first
	List(ctx context.Context) ([]*entities.Donor, error)
}

// GovernanceProposalRepository defines the interface for proposals and their
// vote tallies
type GovernanceProposalRepository interface {
	// GetByID retrieves a proposal by id
	GetByID(ctx context.Context, id string) (*entities.GovernanceProposal, error)

	// Create creates a new proposal with zeroed tallies
	Create(ctx context.Context, proposal *entities.GovernanceProposal) error

	// List returns all proposals, newest first
	List(ctx context.Context) ([]*entities.GovernanceProposal, error)

	// CastVote records the vote and applies its weight to the tally as one
	// atomic operation. totalVotes is written as votesFor + votesAgainst,
	// never incremented independently. Returns entities.ErrNotFound when the
	// proposal is absent and entities.ErrAlreadyVoted when the voter already
	// has a recorded vote.
	CastVote(ctx context.Context, proposalID, voterID string, direction entities.VoteDirection, weight int64) (*entities.GovernanceProposal, error)

	// GetVote returns a voter's recorded vote on a proposal, nil if none
	GetVote(ctx context.Context, proposalID, voterID string) (*entities.ProposalVote, error)

	// UpdateStatus sets the caller-driven proposal status
	UpdateStatus(ctx context.Context, id string, status string) (*entities.GovernanceProposal, error)
}

// DeveloperSettingsRepository defines the interface for per-user settings
type DeveloperSettingsRepository interface {
	// GetByUserID retrieves a user's settings, nil if never written
	GetByUserID(ctx context.Context, userID string) (*entities.DeveloperSettings, error)

	// Upsert writes a user's settings, keeping at most one row per user
	Upsert(ctx context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error)
}

// PlatformStatsRepository defines the interface for the single-row
// dashboard aggregate
type PlatformStatsRepository interface {
	// Get returns the stats row, creating a zeroed one if none exists
	Get(ctx context.Context) (*entities.PlatformStats, error)

	// Update merges a partial update over the stats row
	Update(ctx context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error)

	// IncrementTransactionsToday bumps the daily counter in place
	IncrementTransactionsToday(ctx context.Context) error
}
