package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/frostbnb/seedctl/internal/vocab"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Verify   Verify   `json:"verify" mapstructure:"verify"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	Count              int    `json:"count" mapstructure:"count"`
	Admins             int    `json:"admins" mapstructure:"admins"`
	PasswordHashLength int    `json:"password_hash_length" mapstructure:"password_hash_length"`
	CalendarDays       int    `json:"calendar_days" mapstructure:"calendar_days"`
	Batch              int    `json:"batch" mapstructure:"batch"`
	WindowStart        string `json:"window_start" mapstructure:"window_start"`
	WindowEnd          string `json:"window_end" mapstructure:"window_end"`
}

type Verify struct {
	MinRows int `json:"min_rows" mapstructure:"min_rows"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	defaults := vocab.DefaultParams()

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.Count == 0 {
		cfg.Seed.Count = defaults.RowCount
	}
	if cfg.Seed.Admins == 0 {
		cfg.Seed.Admins = defaults.AdminCount
	}
	if cfg.Seed.PasswordHashLength == 0 {
		cfg.Seed.PasswordHashLength = defaults.PasswordHashLength
	}
	if cfg.Seed.CalendarDays == 0 {
		cfg.Seed.CalendarDays = defaults.CalendarDays
	}
	if cfg.Seed.Batch == 0 {
		cfg.Seed.Batch = 500
	}
	if cfg.Seed.WindowStart == "" {
		cfg.Seed.WindowStart = defaults.WindowStart.Format("2006-01-02")
	}
	if cfg.Seed.WindowEnd == "" {
		cfg.Seed.WindowEnd = defaults.WindowEnd.Format("2006-01-02")
	}
	if cfg.Verify.MinRows == 0 {
		cfg.Verify.MinRows = 20
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}
	if _, err := c.SeedParams(); err != nil {
		return err
	}
	return nil
}

// SeedParams converts the seed section into vocabulary parameters.
func (c *Config) SeedParams() (vocab.Params, error) {
	start, err := time.Parse("2006-01-02", c.Seed.WindowStart)
	if err != nil {
		return vocab.Params{}, fmt.Errorf("invalid seed.window_start %q: %w", c.Seed.WindowStart, err)
	}
	end, err := time.Parse("2006-01-02", c.Seed.WindowEnd)
	if err != nil {
		return vocab.Params{}, fmt.Errorf("invalid seed.window_end %q: %w", c.Seed.WindowEnd, err)
	}

	return vocab.Params{
		RowCount:           c.Seed.Count,
		AdminCount:         c.Seed.Admins,
		WindowStart:        start,
		WindowEnd:          end,
		PasswordHashLength: c.Seed.PasswordHashLength,
		CalendarDays:       c.Seed.CalendarDays,
	}, nil
}
