package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/scamtrace/scamtrace/internal/badge"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// CurrentVersion is the config file version this build expects.
const CurrentVersion = 1

// Config represents the entire application configuration.
type Config struct {
	// Version of the config file.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	API        API        `koanf:"api"`
	Bounty     Bounty     `koanf:"bounty"`
	Badge      Badge      `koanf:"badge"`
}

// Debug contains development and troubleshooting settings.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Enable query logging for database operations.
	QueryLogging bool `koanf:"query_logging"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	// Database hostname.
	Host string `koanf:"host"`
	// Database port.
	Port int `koanf:"port"`
	// Database username.
	User string `koanf:"user"`
	// Database password.
	Password string `koanf:"password"`
	// Database name.
	DBName string `koanf:"db_name"`
	// Maximum open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	// Redis hostname.
	Host string `koanf:"host"`
	// Redis port.
	Port int `koanf:"port"`
	// Redis username.
	Username string `koanf:"username"`
	// Redis password.
	Password string `koanf:"password"`
}

// API contains REST API server configuration.
type API struct {
	Server    Server    `koanf:"server"`
	RateLimit RateLimit `koanf:"rate_limit"`
}

// Server contains HTTP listener configuration.
type Server struct {
	// Listen address.
	Host string `koanf:"host"`
	// Listen port.
	Port int `koanf:"port"`
}

// RateLimit contains per-IP request throttling configuration.
type RateLimit struct {
	// Sustained requests per second allowed per client IP.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	// Burst capacity per client IP.
	BurstSize int `koanf:"burst_size"`
}

// Bounty contains bounty ledger configuration.
type Bounty struct {
	// Contribution list cache lifetime in minutes.
	CacheTTLMinutes int `koanf:"cache_ttl_minutes"`
	// Default contribution page size.
	PageSize int `koanf:"page_size"`
	// Balance cache lifetime in minutes for the badge balance collaborator.
	BalanceTTLMinutes int `koanf:"balance_ttl_minutes"`
}

// Badge contains reputation tier configuration. Tier thresholds are data,
// not code: operators can override the compiled-in table from the config
// file as long as the result passes validation.
type Badge struct {
	// Total token supply used to derive percent-of-supply.
	TotalSupply float64 `koanf:"total_supply"`
	// Multiplier converting bounty amounts into holding-equivalent units.
	ConversionRate float64 `koanf:"conversion_rate"`
	// Tier table override. Empty means the compiled-in default.
	Tiers []badge.Tier `koanf:"tiers"`
	// Indexer endpoint for wallet balance lookups.
	BalanceURL string `koanf:"balance_url"`
}

// LoadConfig loads the configuration from the first scamtrace.toml found in
// the search paths. Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configPaths := []string{
		".scamtrace",
		homeDir + "/.scamtrace/config",
		"/etc/scamtrace/config",
		"/app/config",
		"config",
		".",
	}

	var usedConfigPath string

	for _, path := range configPaths {
		configPath := path + "/scamtrace.toml"
		if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
			usedConfigPath = path
			break
		}
	}

	if usedConfigPath == "" {
		return nil, "", fmt.Errorf("%w: scamtrace.toml", ErrConfigFileNotFound)
	}

	config := defaultConfig()
	if err := k.Unmarshal("", config); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.Version != CurrentVersion {
		return nil, "", fmt.Errorf("%w: found version %d, expected %d (see config/scamtrace.toml in the repository for the current format)",
			ErrConfigVersionMismatch, config.Version, CurrentVersion)
	}

	if err := config.Validate(); err != nil {
		return nil, "", err
	}

	return config, usedConfigPath, nil
}

// Validate checks cross-field constraints that koanf cannot express.
func (c *Config) Validate() error {
	if err := badge.ValidateTiers(c.Badge.Tiers); err != nil {
		return fmt.Errorf("invalid badge tier table: %w", err)
	}

	if c.Badge.TotalSupply <= 0 {
		return fmt.Errorf("%w: badge total supply %v", badge.ErrInvalidSupply, c.Badge.TotalSupply)
	}

	return nil
}

// defaultConfig returns a config populated with compiled-in defaults that
// the config file overrides selectively.
func defaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Debug: Debug{
			LogLevel: "info",
		},
		PostgreSQL: PostgreSQL{
			Host:         "127.0.0.1",
			Port:         5432,
			MaxOpenConns: 8,
			MaxIdleConns: 8,
			MaxLifetime:  10,
			MaxIdleTime:  10,
		},
		Redis: Redis{
			Host: "127.0.0.1",
			Port: 6379,
		},
		API: API{
			Server: Server{
				Host: "127.0.0.1",
				Port: 8080,
			},
			RateLimit: RateLimit{
				RequestsPerSecond: 5,
				BurstSize:         10,
			},
		},
		Bounty: Bounty{
			CacheTTLMinutes:   5,
			PageSize:          10,
			BalanceTTLMinutes: 5,
		},
		Badge: Badge{
			TotalSupply:    1_000_000_000,
			ConversionRate: 1000,
			Tiers:          badge.DefaultTiers,
			BalanceURL:     "http://127.0.0.1:9090/balance",
		},
	}
}
