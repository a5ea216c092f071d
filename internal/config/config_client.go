package config

import (
	"fmt"
	"time"
)

// Transport kinds accepted by [ClientConfig].
const (
	TransportCurl   = "curl"
	TransportNative = "native"
)

const (
	defaultCurlPath       = "curl"
	defaultRequestTimeout = 30 * time.Second
	defaultDraftsPath     = "drafts.db"
)

// ClientConfig is the sheetpad configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Basket identifies the remote basket.
	Basket Basket
	// Transport configures the request executor.
	Transport Transport
	// Storage configures the local drafts database.
	Storage Storage
	// Workers configures the autosave job.
	Workers Workers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration, filling in defaults for the transport
// kind, curl path, request timeout, and drafts path.
//
// An empty basket identifier is deliberately not a validation error: the
// adapter reports it as a not-configured condition at operation time.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Basket:    cfg.Basket,
		Transport: cfg.Transport,
		Storage:   cfg.Storage,
		Workers:   cfg.Workers,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Transport.Kind == "" {
		cfg.Transport.Kind = TransportCurl
	}
	if cfg.Transport.CurlPath == "" {
		cfg.Transport.CurlPath = defaultCurlPath
	}
	if cfg.Transport.RequestTimeout == 0 {
		cfg.Transport.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DraftsPath == "" {
		cfg.Storage.DraftsPath = defaultDraftsPath
	}
	if cfg.Basket.Name == "" {
		cfg.Basket.Name = "sheet"
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Transport.Kind != TransportCurl && cfg.Transport.Kind != TransportNative {
		return ErrInvalidTransportConfigs
	}

	if cfg.Transport.RequestTimeout < 0 || cfg.Workers.AutoSaveInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Basket.ID != "" && cfg.Basket.BaseURL == "" {
		return ErrInvalidBasketConfigs
	}

	return nil
}
