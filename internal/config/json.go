package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Backend struct {
		BaseURL        string   `json:"base_url"`
		ContainerID    string   `json:"container_id"`
		DeviceToken    string   `json:"device_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Notify struct {
		HTTPAddress string `json:"http_address"`
	} `json:"notify,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		CaptureInterval Duration `json:"capture_interval"`
	} `json:"workers,omitempty"`

	Sync struct {
		ProbeTimeout     Duration `json:"probe_timeout"`
		AccountTimeout   Duration `json:"account_timeout"`
		CycleTimeout     Duration `json:"cycle_timeout"`
		PropagationGrace Duration `json:"propagation_grace"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Backend: Backend{
			BaseURL:        jsonCfg.Backend.BaseURL,
			ContainerID:    jsonCfg.Backend.ContainerID,
			DeviceToken:    jsonCfg.Backend.DeviceToken,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Notify: Notify{
			HTTPAddress: jsonCfg.Notify.HTTPAddress,
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			CaptureInterval: time.Duration(jsonCfg.Workers.CaptureInterval),
		},
		Sync: Sync{
			ProbeTimeout:     time.Duration(jsonCfg.Sync.ProbeTimeout),
			AccountTimeout:   time.Duration(jsonCfg.Sync.AccountTimeout),
			CycleTimeout:     time.Duration(jsonCfg.Sync.CycleTimeout),
			PropagationGrace: time.Duration(jsonCfg.Sync.PropagationGrace),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
