// Package memstore is the process-lifetime storage backend. It satisfies the
// same facade as the PostgreSQL-backed repository package, holds everything
// in keyed maps, and loses all data on restart. Intended for development and
// tests; the seeded variant starts with the demo fixtures the dashboard
// expects.
package memstore

import (
	"sync"
	"time"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/google/uuid"
)

// Store implements the interfaces.Store facade over in-memory maps.
// Records are stored and returned by value so callers always hold snapshots;
// mutating a returned record never touches stored state.
type Store struct {
	mu           sync.RWMutex
	users        map[string]entities.User
	microApps    map[string]entities.MicroApp
	transactions map[string]entities.Transaction
	aiMessages   map[string]entities.AiMessage
	projects     map[string]entities.Project
	tasks        map[string]entities.Task
	donors       map[string]entities.Donor
	proposals    map[string]entities.GovernanceProposal
	votes        map[voteKey]entities.ProposalVote
	settings     map[string]entities.DeveloperSettings
	stats        *entities.PlatformStats
}

type voteKey struct {
	proposalID string
	voterID    string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		users:        make(map[string]entities.User),
		microApps:    make(map[string]entities.MicroApp),
		transactions: make(map[string]entities.Transaction),
		aiMessages:   make(map[string]entities.AiMessage),
		projects:     make(map[string]entities.Project),
		tasks:        make(map[string]entities.Task),
		donors:       make(map[string]entities.Donor),
		proposals:    make(map[string]entities.GovernanceProposal),
		votes:        make(map[voteKey]entities.ProposalVote),
		settings:     make(map[string]entities.DeveloperSettings),
	}
}

// NewSeeded creates an in-memory store pre-loaded with the demo fixtures.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) Users() interfaces.UserRepository { return &userRepository{s} }

func (s *Store) MicroApps() interfaces.MicroAppRepository { return &microAppRepository{s} }

func (s *Store) Transactions() interfaces.TransactionRepository { return &transactionRepository{s} }

func (s *Store) AiMessages() interfaces.AiMessageRepository { return &aiMessageRepository{s} }

func (s *Store) Projects() interfaces.ProjectRepository { return &projectRepository{s} }

func (s *Store) Tasks() interfaces.TaskRepository { return &taskRepository{s} }

func (s *Store) Donors() interfaces.DonorRepository { return &donorRepository{s} }

func (s *Store) Proposals() interfaces.GovernanceProposalRepository { return &proposalRepository{s} }

func (s *Store) Settings() interfaces.DeveloperSettingsRepository { return &settingsRepository{s} }

func (s *Store) PlatformStats() interfaces.PlatformStatsRepository {
	return &platformStatsRepository{s}
}

// Close is a no-op; the store owns no external resources.
func (s *Store) Close() {}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}
