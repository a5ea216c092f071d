package config

import "fmt"

const defaultServerAddress = "localhost:8080"

// ServerConfig is the basketd configuration view assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Server holds the listen address.
	Server Server
}

// GetServerConfig builds the basketd config view from the merged structured
// configuration, defaulting the listen address when unset.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server}
	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = defaultServerAddress
	}

	return serverCfg, nil
}
