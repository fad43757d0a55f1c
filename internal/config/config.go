package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/wearesage/mcp-neo4j/internal/graph"
)

// Environment variable names read by Load.
const (
	EnvURI      = "NEO4J_URI"
	EnvUsername = "NEO4J_USERNAME"
	EnvPassword = "NEO4J_PASSWORD"
	EnvDatabase = "NEO4J_DATABASE"

	EnvLogLevel  = "MCP_NEO4J_LOG_LEVEL"
	EnvLogFormat = "MCP_NEO4J_LOG_FORMAT"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// Config is the complete runtime configuration of the server.
type Config struct {
	Graph   graph.Config
	Logging LoggingConfig
}

// LoggingConfig controls the stderr log stream.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment. The three connection values
// are required and their absence is an error naming every missing variable;
// nothing is read from files or flags. Logging values are optional and
// validated against the allowed sets.
func Load() (*Config, error) {
	v := viper.New()
	v.BindEnv("uri", EnvURI)
	v.BindEnv("username", EnvUsername)
	v.BindEnv("password", EnvPassword)
	v.BindEnv("database", EnvDatabase)
	v.BindEnv("log_level", EnvLogLevel)
	v.BindEnv("log_format", EnvLogFormat)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)

	cfg := &Config{
		Graph: graph.Config{
			URI:      v.GetString("uri"),
			Username: v.GetString("username"),
			Password: v.GetString("password"),
			Database: v.GetString("database"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Graph.URI == "" {
		missing = append(missing, EnvURI)
	}
	if c.Graph.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if c.Graph.Password == "" {
		missing = append(missing, EnvPassword)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q (%s)", ErrInvalidLogLevel, c.Logging.Level, EnvLogLevel)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q (%s)", ErrInvalidLogFormat, c.Logging.Format, EnvLogFormat)
	}

	return nil
}
