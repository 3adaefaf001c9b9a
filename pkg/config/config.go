package config

import (
	"fmt"
	"os"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:podscope.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	System struct {
		LookbackDays       int           `yaml:"lookback_days" json:"lookback_days" jsonschema:"default=7,description=How many days back to accept episodes"`
		MaxEpisodesPerFeed int           `yaml:"max_episodes_per_feed" json:"max_episodes_per_feed" jsonschema:"default=5,description=Maximum episodes per feed per run"`
		RunInterval        time.Duration `yaml:"run_interval" json:"run_interval" jsonschema:"default=6h,description=Interval between processing runs in server mode"`
		FetchTimeout       time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
		UserAgent          string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Podscope/1.0,description=User agent for feed requests"`
	} `yaml:"system" json:"system" jsonschema:"description=Pipeline configuration"`

	Budget BudgetConfig `yaml:"budget" json:"budget" jsonschema:"description=Spending limits for LLM calls"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for intelligence extraction"`

	Feeds []FeedConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Podcast feeds to process"`

	FocusAreas map[string]string `yaml:"focus_areas" json:"focus_areas" jsonschema:"description=Extraction emphasis text per focus area"`
}

// FeedConfig describes a single podcast feed
type FeedConfig struct {
	Name     string `yaml:"name" json:"name" jsonschema:"required,description=Feed display name"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=RSS/Atom feed URL"`
	Focus    string `yaml:"focus" json:"focus" jsonschema:"default=general,description=Focus area tag"`
	Active   bool   `yaml:"active" json:"active" jsonschema:"default=true,description=Whether the feed is processed"`
	Priority string `yaml:"priority" json:"priority" jsonschema:"default=medium,description=Feed priority"`
}

// BudgetConfig holds spending ceilings for extraction calls
type BudgetConfig struct {
	DailyLimitUSD  float64 `yaml:"daily_limit_usd" json:"daily_limit_usd" jsonschema:"default=5.0,description=Daily spending ceiling in USD"`
	WeeklyLimitUSD float64 `yaml:"weekly_limit_usd" json:"weekly_limit_usd" jsonschema:"default=20.0,description=Weekly spending ceiling in USD"`
	AlertThreshold float64 `yaml:"alert_threshold" json:"alert_threshold" jsonschema:"default=0.8,description=Fraction of a limit that triggers a warning"`
}

// LLMConfig holds LLM configuration for intelligence extraction
type LLMConfig struct {
	Endpoint        string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey          string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model           string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini)"`
	Temperature     float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens       int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=3500,description=Maximum tokens in response"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=120s,description=Request timeout"`
	InputPricePerM  float64       `yaml:"input_price_per_m" json:"input_price_per_m" jsonschema:"description=Override input price in USD per million tokens"`
	OutputPricePerM float64       `yaml:"output_price_per_m" json:"output_price_per_m" jsonschema:"description=Override output price in USD per million tokens"`
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
		cfg.Database.DSN = "file:podscope.db?cache=shared&mode=rwc"
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

	// set defaults for system
	if cfg.System.LookbackDays == 0 {
		cfg.System.LookbackDays = 7
	}
	if cfg.System.MaxEpisodesPerFeed == 0 {
		cfg.System.MaxEpisodesPerFeed = 5
	}
	if cfg.System.RunInterval == 0 {
		cfg.System.RunInterval = 6 * time.Hour
	}
	if cfg.System.FetchTimeout == 0 {
		cfg.System.FetchTimeout = 30 * time.Second
	}
	if cfg.System.UserAgent == "" {
		cfg.System.UserAgent = "Podscope/1.0"
	}

	// set defaults for budget
	if cfg.Budget.DailyLimitUSD == 0 {
		cfg.Budget.DailyLimitUSD = 5.0
	}
	if cfg.Budget.WeeklyLimitUSD == 0 {
		cfg.Budget.WeeklyLimitUSD = 20.0
	}
	if cfg.Budget.AlertThreshold == 0 {
		cfg.Budget.AlertThreshold = 0.8
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.2
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 3500
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 120 * time.Second
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Budget.DailyLimitUSD < 0 {
		return fmt.Errorf("budget.daily_limit_usd must be non-negative")
	}
	if cfg.Budget.WeeklyLimitUSD < 0 {
		return fmt.Errorf("budget.weekly_limit_usd must be non-negative")
	}
	if cfg.Budget.AlertThreshold < 0 || cfg.Budget.AlertThreshold > 1 {
		return fmt.Errorf("budget.alert_threshold must be between 0 and 1")
	}
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feeds[%d].name is required", i)
		}
	}
	return nil
}

// ActiveFeeds returns feeds that are enabled and have a URL set
func (c *Config) ActiveFeeds() []FeedConfig {
	active := make([]FeedConfig, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		if f.Active && f.URL != "" {
			active = append(active, f)
		}
	}
	return active
}

// ExtractionEmphasis returns the emphasis text for a focus area, with a
// generic default for unknown areas
func (c *Config) ExtractionEmphasis(focusArea string) string {
	if emphasis, ok := c.FocusAreas[focusArea]; ok && emphasis != "" {
		return emphasis
	}
	return "Focus on key insights and actionable takeaways"
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
