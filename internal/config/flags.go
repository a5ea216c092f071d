package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-url basket store base URL
//	-b basket identifier
//	-n basket entry name
//	-transport executor kind: curl | native
//	-curl-path curl binary path for the subprocess executor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-drafts drafts database path
//	-autosave autosave interval (e.g., "1m"); 0 disables
//	-a basketd listen address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var basketID string
	var basketName string
	var transportKind string
	var curlPath string
	var requestTimeout time.Duration
	var draftsPath string
	var autoSaveInterval time.Duration
	var serverAddress string
	var jsonConfigPath string

	flag.StringVar(&baseURL, "url", "", "Basket store base URL")
	flag.StringVar(&basketID, "b", "", "Basket identifier")
	flag.StringVar(&basketName, "n", "", "Basket entry name")
	flag.StringVar(&transportKind, "transport", "", "Transport kind: curl | native")
	flag.StringVar(&curlPath, "curl-path", "", "Curl binary path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&draftsPath, "drafts", "", "Drafts database path")
	flag.DurationVar(&autoSaveInterval, "autosave", 0, "Autosave interval (0 disables)")
	flag.StringVar(&serverAddress, "a", "", "basketd listen address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Basket: Basket{
			BaseURL: baseURL,
			ID:      basketID,
			Name:    basketName,
		},
		Transport: Transport{
			Kind:           transportKind,
			CurlPath:       curlPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DraftsPath: draftsPath,
		},
		Workers: Workers{
			AutoSaveInterval: autoSaveInterval,
		},
		Server: Server{
			HTTPAddress: serverAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
