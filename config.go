package neochem

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to run the backend.
type Config struct {
	Neo4j Neo4jConfig `yaml:"neo4j"`
	Log   LogConfig   `yaml:"log"`
}

// Neo4jConfig locates and authenticates against the graph database.
type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// LogConfig controls the logger built by NewLogger.
type LogConfig struct {
	// Level is any level logrus understands: trace, debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration for a local Neo4j instance.
func DefaultConfig() Config {
	return Config{
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path when path is not
// empty, then applies NEOCHEM_* environment variables, and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.Neo4j.URI = getEnv("NEOCHEM_NEO4J_URI", cfg.Neo4j.URI)
	cfg.Neo4j.Username = getEnv("NEOCHEM_NEO4J_USERNAME", cfg.Neo4j.Username)
	cfg.Neo4j.Password = getEnv("NEOCHEM_NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Database = getEnv("NEOCHEM_NEO4J_DATABASE", cfg.Neo4j.Database)
	cfg.Log.Level = getEnv("NEOCHEM_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("NEOCHEM_LOG_FORMAT", cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing or unknown values.
func (c Config) Validate() error {
	if c.Neo4j.URI == "" {
		return fmt.Errorf("%w: neo4j uri is required", ErrInvalidConfig)
	}
	if c.Neo4j.Username == "" {
		return fmt.Errorf("%w: neo4j username is required", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
