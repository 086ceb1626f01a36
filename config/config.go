package config

import (
	"fmt"
	"os"
	"strings"

	"workbindr/database"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backend modes.
const (
	StorageModeMemory   = "memory"
	StorageModePostgres = "postgres"
)

// Config holds all application configuration. Load builds one per call;
// there is no process-wide instance, callers pass it to what needs it.
type Config struct {
	Server  Server  `koanf:"server"`
	Storage Storage `koanf:"storage"`
	Gemini  Gemini  `koanf:"gemini"`

	// Environment is "development", "production" or "test"
	Environment string `koanf:"environment"`
}

// Server holds the HTTP listener configuration.
type Server struct {
	Addr string `koanf:"addr"`
}

// Storage selects the backend and carries its connection info.
type Storage struct {
	// Mode is "memory" or "postgres"
	Mode         string `koanf:"mode"`
	DatabaseURL  string `koanf:"database_url"`
	DatabaseName string `koanf:"database_name"`
}

// Gemini holds the assistant client configuration.
type Gemini struct {
	APIKey string `koanf:"api_key"`
}

// Load reads workbindr.toml from the usual search paths, then applies
// environment overrides. A missing config file is fine; the defaults plus
// environment are enough to run.
func Load() (*Config, error) {
	k := koanf.New(".")

	configPaths := []string{
		".",
		"config",
		"/etc/workbindr",
	}
	for _, path := range configPaths {
		configPath := fmt.Sprintf("%s/workbindr.toml", path)
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			break
		}
	}

	config := &Config{
		Server:  Server{Addr: ":8080"},
		Storage: Storage{Mode: StorageModeMemory},
	}
	if err := k.Unmarshal("", config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(config)

	if config.Environment == "" {
		config.Environment = "development"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		config.Server.Addr = addr
	}
	if mode := os.Getenv("STORAGE_MODE"); mode != "" {
		config.Storage.Mode = mode
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Storage.DatabaseURL = url
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		config.Storage.DatabaseName = name
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Gemini.APIKey = key
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Environment = env
	}
}

func (c *Config) validate() error {
	switch c.Storage.Mode {
	case StorageModeMemory:
	case StorageModePostgres:
		if c.Environment != "test" && c.Storage.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when storage mode is postgres")
		}
	default:
		return fmt.Errorf("unknown storage mode %q", c.Storage.Mode)
	}

	if c.Storage.DatabaseName != "" && strings.TrimSpace(c.Storage.DatabaseName) == "" {
		return fmt.Errorf("DATABASE_NAME cannot be blank when provided")
	}
	return nil
}

// GetDatabaseURL constructs the full database URL by combining base URL and
// database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.Storage.DatabaseURL, c.Storage.DatabaseName)
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Server:      Server{Addr: "127.0.0.1:0"},
		Storage:     Storage{Mode: StorageModeMemory},
		Environment: "test",
	}
}
