package config

import (
	"time"
)

// Provider kinds accepted by [Provider.Kind].
const (
	ProviderFS   = "fs"
	ProviderHTTP = "http"
)

// StructuredConfig is the top-level configuration container for snapsift.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file, and
// built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the free-tier quota and
	// the simulated billing delay.
	App App `envPrefix:"APP_"`

	// Provider selects and configures the asset provider backend.
	Provider Provider `envPrefix:"PROVIDER_"`

	// Storage holds configuration for the local settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server configures the photo service's HTTP listener. Only used by
	// the snapsift-photoserver binary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// FreeQuota is the number of photos visible without an entitlement.
	// Env: APP_FREE_QUOTA
	FreeQuota int `env:"FREE_QUOTA"`

	// BillingDelay is the fixed simulated round-trip duration for the
	// purchase, restore, and reset entitlement operations.
	// Env: APP_BILLING_DELAY
	BillingDelay time.Duration `env:"BILLING_DELAY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Provider configures the asset-provider backend.
type Provider struct {
	// Kind selects the backend: "fs" for a local photo directory, "http"
	// for a remote photo service.
	// Env: PROVIDER_KIND
	Kind string `env:"KIND"`

	// Root is the photo directory for the "fs" backend.
	// Env: PROVIDER_ROOT
	Root string `env:"ROOT"`

	// Address is the base URL of the remote photo service for the "http"
	// backend (e.g. "http://localhost:8080").
	// Env: PROVIDER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration for one outbound provider
	// request (e.g. "30s", "1m").
	// Env: PROVIDER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TargetWidth and TargetHeight bound the resolution at which photo
	// previews are materialized during synchronization.
	// Env: PROVIDER_TARGET_WIDTH / PROVIDER_TARGET_HEIGHT
	TargetWidth  int `env:"TARGET_WIDTH"`
	TargetHeight int `env:"TARGET_HEIGHT"`
}

// Storage groups the configuration of the local persistence backends.
type Storage struct {
	// DB holds local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database path (e.g. "snapsift.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the photo service's listener settings.
type Server struct {
	// Address is the HTTP listen address (e.g. ":8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the background refresh job
	// re-synchronizes the collection with the provider.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
