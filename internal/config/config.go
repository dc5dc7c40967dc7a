package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

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

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// rate limiting, per minute
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
	WriteRateLimitAllowedPerMin int `toml:"write_rate_limit_allowed_per_min"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// StatsTimezone is the IANA zone used to cut workout dates into calendar days.
	StatsTimezone          string `toml:"stats_timezone"`
	TrainersCacheTTLSec    int    `toml:"trainers_cache_ttl_sec"`
	SessionTTLHours        int    `toml:"session_ttl_hours"`
	SessionsCleanupMinutes int    `toml:"sessions_cleanup_minutes"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied and the result validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.StatsTimezone == "" {
		c.StatsTimezone = "UTC"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.WriteRateLimitAllowedPerMin == 0 {
		c.WriteRateLimitAllowedPerMin = 120
	}
	if c.TrainersCacheTTLSec == 0 {
		c.TrainersCacheTTLSec = 60
	}
	if c.SessionTTLHours == 0 {
		c.SessionTTLHours = 24 * 7
	}
	if c.SessionsCleanupMinutes == 0 {
		c.SessionsCleanupMinutes = 8 * 60
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.PostgresHost == "" {
		errs = append(errs, errors.New("postgres_host not set"))
	}
	if c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres_db_name not set"))
	}
	if c.RedisHost == "" {
		errs = append(errs, errors.New("redis_host not set"))
	}
	if _, err := time.LoadLocation(c.StatsTimezone); err != nil {
		errs = append(errs, fmt.Errorf("stats_timezone: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) StatsLocation() *time.Location {
	loc, err := time.LoadLocation(c.StatsTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

func (c *Config) TrainersCacheTTL() time.Duration {
	return time.Duration(c.TrainersCacheTTLSec) * time.Second
}
