package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Provider.Kind {
	case ProviderFS:
		if cfg.Provider.Root == "" {
			return ErrInvalidProviderConfigs
		}
	case ProviderHTTP:
		if cfg.Provider.Address == "" || cfg.Provider.RequestTimeout == 0 {
			return ErrInvalidProviderConfigs
		}
	default:
		return ErrInvalidProviderConfigs
	}

	if cfg.Provider.TargetWidth <= 0 || cfg.Provider.TargetHeight <= 0 {
		return ErrInvalidProviderConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.FreeQuota <= 0 || cfg.App.BillingDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
