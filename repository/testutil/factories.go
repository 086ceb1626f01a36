package testutil

import (
	"time"

	"workbindr/domain/entities"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(email, displayName string) *entities.User {
	now := time.Now()
	return &entities.User{
		Email:           email,
		DisplayName:     displayName,
		ReputationScore: entities.DefaultSignupReputation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// CreateTestUserWithReputation creates a test user with a specific reputation
func CreateTestUserWithReputation(email, displayName string, reputation float64) *entities.User {
	user := CreateTestUser(email, displayName)
	user.ReputationScore = reputation
	return user
}

// CreateTestMicroApp creates a test micro-app with default values
func CreateTestMicroApp(name string) *entities.MicroApp {
	return &entities.MicroApp{
		Name:         name,
		Description:  "test micro-app",
		Version:      "1.0.0",
		IsActive:     true,
		PricePerCall: "0.001",
		CreatedAt:    time.Now(),
	}
}

// CreateTestTransaction creates a test transaction for a user
func CreateTestTransaction(userID string, microAppID *string) *entities.Transaction {
	return &entities.Transaction{
		UserID:      userID,
		MicroAppID:  microAppID,
		Description: "test transaction",
		Amount:      "1.25",
		Status:      entities.TransactionStatusConfirmed,
		CreatedAt:   time.Now(),
	}
}

// CreateTestProject creates a test project with default values
func CreateTestProject(name string) *entities.Project {
	now := time.Now()
	return &entities.Project{
		Name:        name,
		Description: "test project",
		Status:      entities.ProjectStatusActive,
		Priority:    "Medium",
		Progress:    25,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateTestTask creates a test task under a project
func CreateTestTask(projectID, title string) *entities.Task {
	now := time.Now()
	return &entities.Task{
		ProjectID: projectID,
		Title:     title,
		Status:    entities.TaskStatusTodo,
		Priority:  "Medium",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestDonor creates a test donor with default values
func CreateTestDonor(name string) *entities.Donor {
	now := time.Now()
	return &entities.Donor{
		Name:          name,
		Email:         name + "@example.com",
		TotalDonated:  "100",
		DonationCount: 1,
		Status:        "Active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateTestProposal creates an active test proposal with zeroed tallies
func CreateTestProposal(title, proposer string) *entities.GovernanceProposal {
	return &entities.GovernanceProposal{
		Title:       title,
		Description: "test proposal",
		Proposer:    proposer,
		Status:      entities.ProposalStatusActive,
		EndDate:     time.Now().Add(7 * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}
}
