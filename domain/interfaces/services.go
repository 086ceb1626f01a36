package interfaces

import (
	"context"

	"workbindr/domain/entities"
)

// UserService handles account reads and identity reconciliation
type UserService interface {
	// GetUser retrieves a user by id, nil if absent
	GetUser(ctx context.Context, id string) (*entities.User, error)

	// CreateUser creates a user from explicit fields (reputation defaults
	// to zero unless supplied)
	CreateUser(ctx context.Context, displayName, email string, walletAddress *string, reputationScore float64) (*entities.User, error)

	// ReconcileIdentity upserts the identity supplied by the auth layer.
	// First-time users receive the signup default reputation.
	ReconcileIdentity(ctx context.Context, identity entities.UserIdentity) (*entities.User, error)

	// UpdateReputation sets a user's reputation score
	UpdateReputation(ctx context.Context, id string, score float64) (*entities.User, error)
}

// TransactionService handles the append-only activity feed
type TransactionService interface {
	// CreateTransaction validates and appends a transaction, bumping the
	// linked micro-app's counter and the daily platform counter
	CreateTransaction(ctx context.Context, input entities.NewTransaction) (*entities.Transaction, error)

	// RecentTransactions returns the newest transactions across all users
	RecentTransactions(ctx context.Context, limit int) ([]*entities.Transaction, error)

	// UserTransactions returns a user's transactions, newest first
	UserTransactions(ctx context.Context, userID string) ([]*entities.Transaction, error)
}

// GovernanceService handles proposals and reputation-weighted voting
type GovernanceService interface {
	// ListProposals returns all proposals, newest first
	ListProposals(ctx context.Context) ([]*entities.GovernanceProposal, error)

	// GetProposal retrieves a proposal by id, nil if absent
	GetProposal(ctx context.Context, id string) (*entities.GovernanceProposal, error)

	// CreateProposal validates and creates a proposal with zeroed tallies
	CreateProposal(ctx context.Context, input entities.NewGovernanceProposal) (*entities.GovernanceProposal, error)

	// CastVote applies the voter's reputation-weighted vote. The weight is
	// the voter's reputation score rounded half away from zero.
	CastVote(ctx context.Context, proposalID, voterID string, direction entities.VoteDirection) (*entities.GovernanceProposal, error)
}

// SettingsService handles per-user developer settings
type SettingsService interface {
	// GetSettings returns a user's settings, falling back to defaults when
	// none have been written
	GetSettings(ctx context.Context, userID string) (*entities.DeveloperSettings, error)

	// UpdateSettings upserts a user's preferred LLM after validating it
	// against the closed allow-list
	UpdateSettings(ctx context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error)
}

// AssistantService handles assistant conversations
type AssistantService interface {
	// Chat sends the user's message to the model, persists the exchange and
	// returns the reply with the stored message id
	Chat(ctx context.Context, userID, message string) (*entities.AiMessage, error)

	// History returns a user's exchanges in conversation order
	History(ctx context.Context, userID string) ([]*entities.AiMessage, error)
}

// AssistantClient is the LLM collaborator behind AssistantService. The
// production implementation talks to Gemini; tests stub it.
type AssistantClient interface {
	// Generate produces a reply to prompt using the named model
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// BoardService handles projects, tasks and donors
type BoardService interface {
	// ListProjects returns all projects, newest first
	ListProjects(ctx context.Context) ([]*entities.Project, error)

	// CreateProject validates and creates a project
	CreateProject(ctx context.Context, input entities.NewProject) (*entities.Project, error)

	// UpdateProject merges a partial update over an existing project
	UpdateProject(ctx context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error)

	// ListTasks returns all tasks, newest first
	ListTasks(ctx context.Context) ([]*entities.Task, error)

	// ProjectTasks returns a project's tasks, newest first
	ProjectTasks(ctx context.Context, projectID string) ([]*entities.Task, error)

	// CreateTask validates and creates a task under a project
	CreateTask(ctx context.Context, input entities.NewTask) (*entities.Task, error)

	// UpdateTask merges a partial update over an existing task
	UpdateTask(ctx context.Context, id string, update entities.TaskUpdate) (*entities.Task, error)

	// ListDonors returns all donors, newest first
	ListDonors(ctx context.Context) ([]*entities.Donor, error)

	// CreateDonor validates and creates a donor
	CreateDonor(ctx context.Context, input entities.NewDonor) (*entities.Donor, error)

	// UpdateDonor merges a partial update over an existing donor
	UpdateDonor(ctx context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error)
}

// StatsService handles the dashboard aggregate row
type StatsService interface {
	// PlatformStats returns the single stats row
	PlatformStats(ctx context.Context) (*entities.PlatformStats, error)

	// UpdatePlatformStats merges a partial update over the stats row
	UpdatePlatformStats(ctx context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error)
}
