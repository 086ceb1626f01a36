package api

import (
	"net/http"

	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// Services bundles the domain services the API serves.
type Services struct {
	Users        interfaces.UserService
	Transactions interfaces.TransactionService
	Governance   interfaces.GovernanceService
	Settings     interfaces.SettingsService
	Assistant    interfaces.AssistantService
	Board        interfaces.BoardService
	Stats        interfaces.StatsService
}

// NewServer builds the HTTP handler exposing the dashboard API.
func NewServer(store interfaces.Store, services Services) http.Handler {
	users := NewUserHandler(services.Users, store)
	microApps := NewMicroAppHandler(store)
	transactions := NewTransactionHandler(services.Transactions)
	governance := NewGovernanceHandler(services.Governance)
	settings := NewSettingsHandler(services.Settings)
	assistant := NewAssistantHandler(services.Assistant)
	board := NewBoardHandler(services.Board)
	stats := NewStatsHandler(services.Stats)

	router := bunrouter.New()

	router.Use(requestLogger).WithGroup("/api", func(g *bunrouter.Group) {
		g.POST("/auth/callback", users.AuthCallback)

		g.GET("/users/:id", users.GetUser)
		g.POST("/users", users.CreateUser)
		g.PATCH("/users/:id", users.UpdateUser)
		g.GET("/users/:id/transactions", transactions.UserTransactions)
		g.GET("/users/:id/ai-messages", assistant.History)
		g.GET("/users/:id/settings", settings.GetSettings)
		g.PUT("/users/:id/settings", settings.UpdateSettings)

		g.GET("/micro-apps", microApps.ListMicroApps)
		g.GET("/micro-apps/:id", microApps.GetMicroApp)
		g.POST("/micro-apps", microApps.CreateMicroApp)

		g.GET("/transactions", transactions.RecentTransactions)
		g.POST("/transactions", transactions.CreateTransaction)

		g.GET("/platform-stats", stats.GetPlatformStats)
		g.PATCH("/platform-stats", stats.UpdatePlatformStats)

		g.POST("/ai/chat", assistant.Chat)

		g.GET("/projects", board.ListProjects)
		g.POST("/projects", board.CreateProject)
		g.PATCH("/projects/:id", board.UpdateProject)
		g.GET("/projects/:id/tasks", board.ProjectTasks)

		g.GET("/tasks", board.ListTasks)
		g.POST("/tasks", board.CreateTask)
		g.PATCH("/tasks/:id", board.UpdateTask)

		g.GET("/donors", board.ListDonors)
		g.POST("/donors", board.CreateDonor)
		g.PATCH("/donors/:id", board.UpdateDonor)

		g.GET("/governance/proposals", governance.ListProposals)
		g.GET("/governance/proposals/:id", governance.GetProposal)
		g.POST("/governance/proposals", governance.CreateProposal)
		g.POST("/governance/proposals/:id/vote", governance.CastVote)
	})

	return router
}
