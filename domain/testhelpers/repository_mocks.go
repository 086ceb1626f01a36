package testhelpers

import (
	"context"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockStore bundles repository mocks behind the Store facade so service
// tests can wire expectations per repository.
type MockStore struct {
	UserRepo      *MockUserRepository
	MicroAppRepo  *MockMicroAppRepository
	TxRepo        *MockTransactionRepository
	AiMessageRepo *MockAiMessageRepository
	ProjectRepo   *MockProjectRepository
	TaskRepo      *MockTaskRepository
	DonorRepo     *MockDonorRepository
	ProposalRepo  *MockGovernanceProposalRepository
	SettingsRepo  *MockDeveloperSettingsRepository
	StatsRepo     *MockPlatformStatsRepository
}

// NewMockStore creates a store with fresh mocks for every repository.
func NewMockStore() *MockStore {
	return &MockStore{
		UserRepo:      new(MockUserRepository),
		MicroAppRepo:  new(MockMicroAppRepository),
		TxRepo:        new(MockTransactionRepository),
		AiMessageRepo: new(MockAiMessageRepository),
		ProjectRepo:   new(MockProjectRepository),
		TaskRepo:      new(MockTaskRepository),
		DonorRepo:     new(MockDonorRepository),
		ProposalRepo:  new(MockGovernanceProposalRepository),
		SettingsRepo:  new(MockDeveloperSettingsRepository),
		StatsRepo:     new(MockPlatformStatsRepository),
	}
}

func (s *MockStore) Users() interfaces.UserRepository { return s.UserRepo }

func (s *MockStore) MicroApps() interfaces.MicroAppRepository { return s.MicroAppRepo }

func (s *MockStore) Transactions() interfaces.TransactionRepository { return s.TxRepo }

func (s *MockStore) AiMessages() interfaces.AiMessageRepository { return s.AiMessageRepo }

func (s *MockStore) Projects() interfaces.ProjectRepository { return s.ProjectRepo }

func (s *MockStore) Tasks() interfaces.TaskRepository { return s.TaskRepo }

func (s *MockStore) Donors() interfaces.DonorRepository { return s.DonorRepo }

func (s *MockStore) Proposals() interfaces.GovernanceProposalRepository { return s.ProposalRepo }

func (s *MockStore) Settings() interfaces.DeveloperSettingsRepository { return s.SettingsRepo }

func (s *MockStore) PlatformStats() interfaces.PlatformStatsRepository { return s.StatsRepo }

func (s *MockStore) Close() {}

// AssertExpectations asserts expectations on every repository mock.
func (s *MockStore) AssertExpectations(t mock.TestingT) {
	s.UserRepo.AssertExpectations(t)
	s.MicroAppRepo.AssertExpectations(t)
	s.TxRepo.AssertExpectations(t)
	s.AiMessageRepo.AssertExpectations(t)
	s.ProjectRepo.AssertExpectations(t)
	s.TaskRepo.AssertExpectations(t)
	s.DonorRepo.AssertExpectations(t)
	s.ProposalRepo.AssertExpectations(t)
	s.SettingsRepo.AssertExpectations(t)
	s.StatsRepo.AssertExpectations(t)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Upsert(ctx context.Context, identity entities.UserIdentity, defaultReputation float64) (*entities.User, error) {
	args := m.Called(ctx, identity, defaultReputation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update entities.UserUpdate) (*entities.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// MockMicroAppRepository is a mock implementation of MicroAppRepository
type MockMicroAppRepository struct {
	mock.Mock
}

func (m *MockMicroAppRepository) GetByID(ctx context.Context, id string) (*entities.MicroApp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MicroApp), args.Error(1)
}

func (m *MockMicroAppRepository) Create(ctx context.Context, app *entities.MicroApp) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockMicroAppRepository) List(ctx context.Context) ([]*entities.MicroApp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MicroApp), args.Error(1)
}

func (m *MockMicroAppRepository) IncrementTransactionCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*entities.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

// MockAiMessageRepository is a mock implementation of AiMessageRepository
type MockAiMessageRepository struct {
	mock.Mock
}

func (m *MockAiMessageRepository) Create(ctx context.Context, msg *entities.AiMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockAiMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entities.AiMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AiMessage), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, id string, update entities.TaskUpdate) (*entities.Task, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByProject(ctx context.Context, projectID string) ([]*entities.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

// MockDonorRepository is a mock implementation of DonorRepository
type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) GetByID(ctx context.Context, id string) (*entities.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Donor), args.Error(1)
}

func (m *MockDonorRepository) Create(ctx context.Context, donor *entities.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *MockDonorRepository) Update(ctx context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Donor), args.Error(1)
}

func (m *MockDonorRepository) List(ctx context.Context) ([]*entities.Donor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Donor), args.Error(1)
}

// MockGovernanceProposalRepository is a mock implementation of GovernanceProposalRepository
type MockGovernanceProposalRepository struct {
	mock.Mock
}

func (m *MockGovernanceProposalRepository) GetByID(ctx context.Context, id string) (*entities.GovernanceProposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernanceProposal), args.Error(1)
}

func (m *MockGovernanceProposalRepository) Create(ctx context.Context, proposal *entities.GovernanceProposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockGovernanceProposalRepository) List(ctx context.Context) ([]*entities.GovernanceProposal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GovernanceProposal), args.Error(1)
}

func (m *MockGovernanceProposalRepository) CastVote(ctx context.Context, proposalID, voterID string, direction entities.VoteDirection, weight int64) (*entities.GovernanceProposal, error) {
	args := m.Called(ctx, proposalID, voterID, direction, weight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernanceProposal), args.Error(1)
}

func (m *MockGovernanceProposalRepository) GetVote(ctx context.Context, proposalID, voterID string) (*entities.ProposalVote, error) {
	args := m.Called(ctx, proposalID, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProposalVote), args.Error(1)
}

func (m *MockGovernanceProposalRepository) UpdateStatus(ctx context.Context, id string, status string) (*entities.GovernanceProposal, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GovernanceProposal), args.Error(1)
}

// MockDeveloperSettingsRepository is a mock implementation of DeveloperSettingsRepository
type MockDeveloperSettingsRepository struct {
	mock.Mock
}

func (m *MockDeveloperSettingsRepository) GetByUserID(ctx context.Context, userID string) (*entities.DeveloperSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DeveloperSettings), args.Error(1)
}

func (m *MockDeveloperSettingsRepository) Upsert(ctx context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error) {
	args := m.Called(ctx, userID, preferredLLM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DeveloperSettings), args.Error(1)
}

// MockPlatformStatsRepository is a mock implementation of PlatformStatsRepository
type MockPlatformStatsRepository struct {
	mock.Mock
}

func (m *MockPlatformStatsRepository) Get(ctx context.Context) (*entities.PlatformStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlatformStats), args.Error(1)
}

func (m *MockPlatformStatsRepository) Update(ctx context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error) {
	args := m.Called(ctx, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlatformStats), args.Error(1)
}

func (m *MockPlatformStatsRepository) IncrementTransactionsToday(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockAssistantClient is a mock implementation of AssistantClient
type MockAssistantClient struct {
	mock.Mock
}

func (m *MockAssistantClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}
