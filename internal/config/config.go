package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/kondisca/internal/conditioning"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	// InMemoryStore skips postgres and keeps records in process memory (local dev only).
	InMemoryStore bool `toml:"in_memory_store"`
	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// prometheus
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`

	AllowedOrigins []string `toml:"allowed_origins"`
	// Timezone decides which calendar day a measurement or a survey falls on.
	Timezone              string `toml:"timezone"`
	FormulaCacheSize      int    `toml:"formula_cache_size"`
	SurveyRateLimitPerMin int    `toml:"survey_rate_limit_per_min"`
	SessionTTL            string `toml:"session_ttl"`
	conditioning.ProfileMetricIDs
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the config of the given environment,
// with defaults filled in and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.load(env)
}

// Parse is Load for config already in memory.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.load(env)
}

func (t *Toml) load(env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.FormulaCacheSize <= 0 {
		c.FormulaCacheSize = 256
	}
	if c.SurveyRateLimitPerMin <= 0 {
		c.SurveyRateLimitPerMin = 10
	}
	if c.PostgresMaxConns <= 0 {
		c.PostgresMaxConns = 10
	}
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.SessionDuration(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SessionDuration is the TTL given to issued sessions, a week when not set.
func (c *Config) SessionDuration() (time.Duration, error) {
	if c.SessionTTL == "" {
		return 7 * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("parse session ttl: %w", err)
	}
	return d, nil
}
