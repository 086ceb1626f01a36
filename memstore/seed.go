package memstore

import (
	"time"

	"workbindr/domain/entities"
)

// seed loads the demo fixtures the dashboard expects on a fresh development
// instance: one account, six micro-apps, a few feed entries and the header
// stats row.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := now()

	wallet := "0x1a2b...c3d4"
	demoUser := entities.User{
		ID:              newID(),
		Email:           "alex.chen@workbindr.io",
		DisplayName:     "Alex Chen",
		WalletAddress:   &wallet,
		ReputationScore: 87.5,
		CreatedAt:       seeded,
		UpdatedAt:       seeded,
	}
	s.users[demoUser.ID] = demoUser

	apps := []entities.MicroApp{
		{
			ID:               newID(),
			Name:             "Customer Hub",
			Description:      "Manage customer relationships, contacts, and communication history with AI-powered insights.",
			Version:          "v2.1.0",
			APISchema:        "customer.*",
			Icon:             "users",
			Color:            "from-blue-500 to-blue-600",
			IsActive:         true,
			TransactionCount: 47,
			Rating:           4.8,
			ReviewCount:      127,
			PricePerCall:     "0.0003 ETH",
			CreatedAt:        seeded,
		},
		{
			ID:               newID(),
			Name:             "Smart Invoicing",
			Description:      "Create, send, and track invoices with automated payment reminders and blockchain verification.",
			Version:          "v1.8.2",
			APISchema:        "invoice.*",
			Icon:             "file-invoice-dollar",
			Color:            "from-workbindr-emerald to-green-600",
			IsActive:         true,
			TransactionCount: 23,
			Rating:           4.9,
			ReviewCount:      89,
			PricePerCall:     "0.0001 ETH",
			CreatedAt:        seeded,
		},
		{
			ID:               newID(),
			Name:             "Task Flow",
			Description:      "Organize projects, assign tasks, and track progress with AI-powered productivity insights.",
			Version:          "v3.0.1",
			APISchema:        "task.*",
			Icon:             "tasks",
			Color:            "from-workbindr-purple to-purple-600",
			IsActive:         true,
			TransactionCount: 92,
			Rating:           4.7,
			ReviewCount:      156,
			PricePerCall:     "0.0002 ETH",
			CreatedAt:        seeded,
		},
		{
			ID:               newID(),
			Name:             "AI Assistant",
			Description:      "Your personal AI assistant trained on your business data for intelligent automation and insights.",
			Version:          "v4.2.0",
			APISchema:        "assistant.*",
			Icon:             "robot",
			Color:            "from-workbindr-cyan to-teal-600",
			IsActive:         true,
			TransactionCount: 156,
			Rating:           5.0,
			ReviewCount:      234,
			PricePerCall:     "0.001 ETH/query",
			CreatedAt:        seeded,
		},
		{
			ID:               newID(),
			Name:             "Analytics Hub",
			Description:      "Comprehensive business intelligence with real-time dashboards and predictive analytics.",
			Version:          "v2.5.0",
			APISchema:        "analytics.*",
			Icon:             "chart-line",
			Color:            "from-workbindr-amber to-orange-600",
			IsActive:         true,
			TransactionCount: 31,
			Rating:           4.6,
			ReviewCount:      78,
			PricePerCall:     "0.0005 ETH/report",
			CreatedAt:        seeded,
		},
		{
			ID:               newID(),
			Name:             "Doc Manager",
			Description:      "Secure document storage, collaboration, and version control with blockchain verification.",
			Version:          "v1.9.0",
			APISchema:        "document.*",
			Icon:             "file-alt",
			Color:            "from-indigo-500 to-indigo-600",
			IsActive:         true,
			TransactionCount: 78,
			Rating:           4.4,
			ReviewCount:      92,
			PricePerCall:     "0.0001 ETH/doc",
			CreatedAt:        seeded,
		},
	}
	for _, app := range apps {
		s.microApps[app.ID] = app
	}

	hash1 := "0x1a2b3c4d..."
	hash2 := "0x5e6f7g8h..."
	hash3 := "0x9i0j1k2l..."
	customerHubID := apps[0].ID
	taskFlowID := apps[2].ID
	feed := []entities.Transaction{
		{
			ID:              newID(),
			UserID:          demoUser.ID,
			MicroAppID:      &customerHubID,
			Description:     "Customer.add API call",
			Amount:          "0.0003 ETH",
			Status:          entities.TransactionStatusConfirmed,
			TransactionHash: &hash1,
			CreatedAt:       seeded.Add(-2 * time.Minute),
		},
		{
			ID:              newID(),
			UserID:          demoUser.ID,
			Description:     "Reputation reward received",
			Amount:          "+2.5 WBR",
			Status:          entities.TransactionStatusConfirmed,
			TransactionHash: &hash2,
			CreatedAt:       seeded.Add(-15 * time.Minute),
		},
		{
			ID:              newID(),
			UserID:          demoUser.ID,
			MicroAppID:      &taskFlowID,
			Description:     "Task.create API call",
			Amount:          "0.0001 ETH",
			Status:          entities.TransactionStatusConfirmed,
			TransactionHash: &hash3,
			CreatedAt:       seeded.Add(-1 * time.Hour),
		},
	}
	for _, tx := range feed {
		s.transactions[tx.ID] = tx
	}

	s.stats = &entities.PlatformStats{
		ID:                newID(),
		ActiveMicroApps:   6,
		TransactionsToday: 47,
		DataNodes:         1247,
		Contributors:      2856,
		UpdatedAt:         seeded,
	}
}
