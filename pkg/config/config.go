package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"description=Public base URL for absolute links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:mealscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Spoonacular SpoonacularConfig `yaml:"spoonacular" json:"spoonacular" jsonschema:"description=Remote recipe API configuration"`

	Auth AuthConfig `yaml:"auth" json:"auth" jsonschema:"description=Authentication and session configuration"`
}

// SpoonacularConfig holds remote recipe API settings
type SpoonacularConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.spoonacular.com,description=Recipe API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key (can use environment variable)"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Request timeout"`
	SearchCount int           `yaml:"search_count" json:"search_count" jsonschema:"default=20,minimum=1,description=Recipes fetched per remote search"`
	PageSize    int           `yaml:"page_size" json:"page_size" jsonschema:"default=4,minimum=1,description=Recipes shown per page"`
	TeaserCount int           `yaml:"teaser_count" json:"teaser_count" jsonschema:"default=2,minimum=0,description=Recipes shown on the welcome page"`
}

// AuthConfig holds authentication settings
type AuthConfig struct {
	BcryptCost  int           `yaml:"bcrypt_cost" json:"bcrypt_cost" jsonschema:"default=10,description=bcrypt hashing cost"`
	SessionTTL  time.Duration `yaml:"session_ttl" json:"session_ttl" jsonschema:"default=24h,description=Browser session lifetime"`
	MinPassword int           `yaml:"min_password" json:"min_password" jsonschema:"default=6,minimum=1,description=Minimum password length"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:mealscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for the recipe API
	if cfg.Spoonacular.Endpoint == "" {
		cfg.Spoonacular.Endpoint = "https://api.spoonacular.com"
	}
	if cfg.Spoonacular.Timeout == 0 {
		cfg.Spoonacular.Timeout = 10 * time.Second
	}
	if cfg.Spoonacular.SearchCount == 0 {
		cfg.Spoonacular.SearchCount = 20
	}
	if cfg.Spoonacular.PageSize == 0 {
		cfg.Spoonacular.PageSize = 4
	}
	if cfg.Spoonacular.TeaserCount == 0 {
		cfg.Spoonacular.TeaserCount = 2
	}

	// set defaults for auth
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = 24 * time.Hour
	}
	if cfg.Auth.MinPassword == 0 {
		cfg.Auth.MinPassword = 6
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate recipe API config
	if cfg.Spoonacular.APIKey == "" {
		return fmt.Errorf("spoonacular.api_key is required")
	}
	if cfg.Spoonacular.Timeout < time.Second {
		return fmt.Errorf("spoonacular.timeout must be at least 1 second")
	}
	if cfg.Spoonacular.PageSize < 1 {
		return fmt.Errorf("spoonacular.page_size must be at least 1")
	}
	if cfg.Spoonacular.SearchCount < cfg.Spoonacular.PageSize {
		return fmt.Errorf("spoonacular.search_count must be at least page_size")
	}

	// validate auth config
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 31")
	}
	if cfg.Auth.SessionTTL < time.Minute {
		return fmt.Errorf("auth.session_ttl must be at least 1 minute")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetSpoonacularConfig returns remote recipe API configuration
func (c *Config) GetSpoonacularConfig() SpoonacularConfig {
	return c.Spoonacular
}

// GetAuthConfig returns authentication configuration
func (c *Config) GetAuthConfig() AuthConfig {
	return c.Auth
}

// GetPageSize returns the number of recipes shown per page
func (c *Config) GetPageSize() int {
	return c.Spoonacular.PageSize
}
