package config

import "time"

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Defaults for values not set in the environment
const (
	DefaultPort           = "8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "kalefarm"
	DefaultVersion        = "dev"
	DefaultStorageBackend = StorageBackendPostgres
	DefaultAPIURL         = "http://localhost:8080"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute

	DefaultLedgerCloseInterval = 5 * time.Second

	DefaultMinerWorkers     = 4
	DefaultMinerQueueSize   = 64
	DefaultMinerMaxAttempts = 1 << 20
)
