package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LenderSourceFile   = "file"
	LenderSourceSQLite = "sqlite"
)

// ServerConfig is the process configuration, read from the environment.
type ServerConfig struct {
	Port string
	Env  string

	// LenderSource selects where the lender table comes from: "file" or "sqlite".
	LenderSource string
	// ConfigFile is an optional full YAML config; it wins over LendersFile.
	ConfigFile   string
	LendersFile  string
	SQLiteDBPath string

	CORSAllowedOrigins []string
	LogLevel           string
}

// LoadDotEnv loads a .env file for local development. A missing file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:               getEnv("API_PORT", "8080"),
		Env:                getEnv("API_ENV", "development"),
		LenderSource:       getEnv("LENDER_SOURCE", LenderSourceFile),
		ConfigFile:         getEnv("CONFIG_FILE", ""),
		LendersFile:        getEnv("LENDERS_FILE", "./examples/lenders/malta.yaml"),
		SQLiteDBPath:       getEnv("SQLITE_DB_PATH", "./data/lenders.db"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func (c *ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// Validate reports every problem at once.
func (c *ServerConfig) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LenderSource {
	case LenderSourceFile:
		if c.LendersFile == "" && c.ConfigFile == "" {
			problems = append(problems, "LENDERS_FILE or CONFIG_FILE is required when LENDER_SOURCE=file")
		}
	case LenderSourceSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH is required when LENDER_SOURCE=sqlite")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid lender source '%s': must be one of [%s %s]", c.LenderSource, LenderSourceFile, LenderSourceSQLite))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
