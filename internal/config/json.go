package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so config files can write "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	Basket struct {
		BaseURL string `json:"base_url"`
		ID      string `json:"id"`
		Name    string `json:"name"`
	} `json:"basket,omitempty"`

	Transport struct {
		Kind           string   `json:"kind"`
		CurlPath       string   `json:"curl_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"transport,omitempty"`

	Storage struct {
		DraftsPath string `json:"drafts_path"`
	} `json:"storage,omitempty"`

	Workers struct {
		AutoSaveInterval Duration `json:"autosave_interval"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
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
		Basket: Basket{
			BaseURL: jsonCfg.Basket.BaseURL,
			ID:      jsonCfg.Basket.ID,
			Name:    jsonCfg.Basket.Name,
		},
		Transport: Transport{
			Kind:           jsonCfg.Transport.Kind,
			CurlPath:       jsonCfg.Transport.CurlPath,
			RequestTimeout: time.Duration(jsonCfg.Transport.RequestTimeout),
		},
		Storage: Storage{
			DraftsPath: jsonCfg.Storage.DraftsPath,
		},
		Workers: Workers{
			AutoSaveInterval: time.Duration(jsonCfg.Workers.AutoSaveInterval),
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
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
