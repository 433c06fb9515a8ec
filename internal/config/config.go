package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string // API key for authentication
	TrustedProxies []string
	LogLevel       string
	LogFormat      string
	Environment    string
	ServiceName    string
	Version        string

	StorageBackend    string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CacheSize int
	CacheTTL  time.Duration

	// LedgerGenesis anchors the ledger sequence; zero means process start
	LedgerGenesis       time.Time
	LedgerCloseInterval time.Duration

	MinerWorkers     int
	MinerQueueSize   int
	MinerMaxAttempts uint64

	// Front ends
	APIURL       string
	DiscordToken string
	DiscordAppID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", DefaultVersion),

		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", DefaultStorageBackend)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "kalefarm"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),

		LedgerCloseInterval: getEnvAsDuration("LEDGER_CLOSE_INTERVAL", DefaultLedgerCloseInterval),

		MinerWorkers:     getEnvAsInt("MINER_WORKERS", DefaultMinerWorkers),
		MinerQueueSize:   getEnvAsInt("MINER_QUEUE_SIZE", DefaultMinerQueueSize),
		MinerMaxAttempts: uint64(getEnvAsInt("MINER_MAX_ATTEMPTS", DefaultMinerMaxAttempts)),

		APIURL:       strings.TrimRight(getEnv("API_URL", DefaultAPIURL), "/"),
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if genesis := getEnv("LEDGER_GENESIS", ""); genesis != "" {
		sec, err := strconv.ParseInt(genesis, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid LEDGER_GENESIS value: %w", err)
		}
		cfg.LedgerGenesis = time.Unix(sec, 0)
	}

	switch cfg.StorageBackend {
	case StorageBackendPostgres, StorageBackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %s or %s",
			cfg.StorageBackend, StorageBackendPostgres, StorageBackendMemory)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// UsesPostgres reports whether the persistent store is selected
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StorageBackendPostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration string, falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
