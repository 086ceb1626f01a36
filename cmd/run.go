package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"workbindr/ai"
	"workbindr/api"
	"workbindr/config"
	"workbindr/database"
	"workbindr/domain/interfaces"
	"workbindr/domain/services"
	"workbindr/memstore"
	"workbindr/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting workbindr...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var assistantClient interfaces.AssistantClient
	if cfg.Gemini.APIKey != "" {
		client, err := ai.NewClient(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return fmt.Errorf("failed to initialize assistant client: %w", err)
		}
		defer client.Close()
		assistantClient = client
	} else {
		log.Warn("GEMINI_API_KEY not set, assistant endpoints will fail")
		assistantClient = unconfiguredAssistant{}
	}

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: api.NewServer(store, api.Services{
			Users:        services.NewUserService(store),
			Transactions: services.NewTransactionService(store),
			Governance:   services.NewGovernanceService(store),
			Settings:     services.NewSettingsService(store),
			Assistant:    services.NewAssistantService(store, assistantClient),
			Board:        services.NewBoardService(store),
			Stats:        services.NewStatsService(store),
		}),
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":        cfg.Server.Addr,
			"storage":     cfg.Storage.Mode,
			"environment": cfg.Environment,
		}).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Server shutdown error")
	}
	log.Info("Shutdown completed")

	return nil
}

// openStore picks the storage backend from config. The choice is made once
// here; everything downstream sees only the interface.
func openStore(ctx context.Context, cfg *config.Config) (interfaces.Store, error) {
	switch cfg.Storage.Mode {
	case config.StorageModePostgres:
		log.Info("Connecting to database...")
		db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Info("Database connection established")
		return repository.NewStore(db), nil
	case config.StorageModeMemory:
		log.Info("Using in-memory storage with seeded demo data")
		return memstore.NewSeeded(), nil
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.Storage.Mode)
	}
}

// unconfiguredAssistant rejects chat requests when no API key is configured.
type unconfiguredAssistant struct{}

func (unconfiguredAssistant) Generate(ctx context.Context, model, prompt string) (string, error) {
	return "", fmt.Errorf("assistant client not configured")
}
