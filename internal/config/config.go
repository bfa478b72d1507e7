package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	DBPath         string
	LogLevel       string
	DefaultAccount string
	Workers        int
}

// ProcessEnvironmentVariables reads the MM_* variables, an optional .env file
// in the working directory, and falls back to defaults for a local install.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MM")
	v.AutomaticEnv()

	v.SetDefault("DB_PATH", "./data/finance.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DEFAULT_ACCOUNT", "Cash")
	v.SetDefault("WORKERS", 1)

	env := Config{
		DBPath:         v.GetString("DB_PATH"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		DefaultAccount: v.GetString("DEFAULT_ACCOUNT"),
		Workers:        v.GetInt("WORKERS"),
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks the values a user can get wrong.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("config: database path is empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
