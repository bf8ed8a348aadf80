package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-provider provider kind ("fs" or "http")
//	-root photo directory for the fs provider
//	-address remote photo service base URL for the http provider
//	-d local database path
//	-c/-config json file path with configs
//	-request-timeout provider request timeout (e.g., "30s", "1m")
//	-free-quota photos visible without an entitlement
//	-billing-delay simulated billing round-trip (e.g., "2s")
//	-refresh-interval background refresh period (e.g., "5m")
//	-target-width/-target-height preview resolution bounds
//	-server-address photo service listen address (photoserver only)
func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("snapsift", flag.ExitOnError)

	var providerKind string
	var photoRoot string
	var providerAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var freeQuota int
	var billingDelay time.Duration
	var refreshInterval time.Duration
	var targetWidth, targetHeight int
	var serverAddress string

	fs.StringVar(&providerKind, "provider", "", "Asset provider kind (fs|http)")
	fs.StringVar(&photoRoot, "root", "", "Photo directory (fs provider)")
	fs.StringVar(&providerAddress, "address", "", "Photo service base URL (http provider)")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 30s, 1m)")
	fs.IntVar(&freeQuota, "free-quota", 0, "Photos visible without an entitlement")
	fs.DurationVar(&billingDelay, "billing-delay", 0, "Simulated billing round-trip (e.g., 2s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Background refresh period (e.g., 5m)")
	fs.IntVar(&targetWidth, "target-width", 0, "Preview width bound in pixels")
	fs.IntVar(&targetHeight, "target-height", 0, "Preview height bound in pixels")
	fs.StringVar(&serverAddress, "server-address", "", "Photo service listen address (photoserver only)")

	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			FreeQuota:    freeQuota,
			BillingDelay: billingDelay,
		},
		Provider: Provider{
			Kind:           providerKind,
			Root:           photoRoot,
			Address:        providerAddress,
			RequestTimeout: requestTimeout,
			TargetWidth:    targetWidth,
			TargetHeight:   targetHeight,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			Address: serverAddress,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
