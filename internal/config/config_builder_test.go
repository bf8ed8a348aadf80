package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Provider: Provider{Kind: ProviderFS, Root: "/first"}},
		&StructuredConfig{Provider: Provider{Kind: ProviderHTTP, Root: "/second", Address: "http://x"}},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ProviderFS, cfg.Provider.Kind)
	assert.Equal(t, "/first", cfg.Provider.Root)
}

// TestBuild_DefaultsFillUnsetFields verifies that defaults only apply where
// no other source provided a value.
func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Provider: Provider{Root: "/photos"},
	})
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, ProviderFS, cfg.Provider.Kind)
	assert.Equal(t, "/photos", cfg.Provider.Root)
	assert.Equal(t, 10, cfg.App.FreeQuota)
	assert.Equal(t, 2*time.Second, cfg.App.BillingDelay)
	assert.Equal(t, 640, cfg.Provider.TargetWidth)
	assert.Equal(t, "snapsift.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

// TestBuild_ValidationFailures verifies that an invalid merged config is
// rejected with the matching sentinel error.
func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "fs provider without root",
			mutate:  func(cfg *StructuredConfig) { cfg.Provider.Root = "" },
			wantErr: ErrInvalidProviderConfigs,
		},
		{
			name: "http provider without address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Provider.Kind = ProviderHTTP
				cfg.Provider.Address = ""
			},
			wantErr: ErrInvalidProviderConfigs,
		},
		{
			name:    "unknown provider kind",
			mutate:  func(cfg *StructuredConfig) { cfg.Provider.Kind = "carrier-pigeon" },
			wantErr: ErrInvalidProviderConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero free quota",
			mutate:  func(cfg *StructuredConfig) { cfg.App.FreeQuota = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero refresh interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.RefreshInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Provider.Root = "/photos"
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
