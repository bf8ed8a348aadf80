package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		FreeQuota    int      `json:"free_quota"`
		BillingDelay Duration `json:"billing_delay"`
		Version      string   `json:"version"`
	} `json:"app,omitempty"`

	Provider struct {
		Kind           string   `json:"kind"`
		Root           string   `json:"root"`
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		TargetWidth    int      `json:"target_width"`
		TargetHeight   int      `json:"target_height"`
	} `json:"provider,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			FreeQuota:    jsonCfg.App.FreeQuota,
			BillingDelay: time.Duration(jsonCfg.App.BillingDelay),
			Version:      jsonCfg.App.Version,
		},
		Provider: Provider{
			Kind:           jsonCfg.Provider.Kind,
			Root:           jsonCfg.Provider.Root,
			Address:        jsonCfg.Provider.Address,
			RequestTimeout: time.Duration(jsonCfg.Provider.RequestTimeout),
			TargetWidth:    jsonCfg.Provider.TargetWidth,
			TargetHeight:   jsonCfg.Provider.TargetHeight,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
