// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for sheet-todo.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Basket identifies the remote basket this client mirrors the document to.
	Basket Basket `envPrefix:"BASKET_"`

	// Transport holds settings for the outbound request executor.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Storage holds settings for local persistence (the drafts database).
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings (autosave).
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds settings for the basketd development server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Basket addresses a single remote basket: base URL of the store plus the
// basket identifier and entry name.
type Basket struct {
	// BaseURL is the root URL of the basket store
	// (e.g. "https://basket.example.com").
	// Env: BASKET_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ID is the basket identifier. When empty, remote operations
	// short-circuit with a not-configured error instead of issuing requests.
	// Env: BASKET_ID
	ID string `env:"ID"`

	// Name is the entry name inside the basket.
	// Env: BASKET_NAME
	Name string `env:"NAME"`
}

// Transport configures the request executor.
type Transport struct {
	// Kind selects the executor implementation: "curl" (subprocess per
	// request) or "native" (in-process HTTP client). Defaults to "curl".
	// Env: TRANSPORT_KIND
	Kind string `env:"KIND"`

	// CurlPath is the curl binary to spawn for the subprocess executor.
	// Defaults to "curl" resolved via PATH.
	// Env: TRANSPORT_CURL_PATH
	CurlPath string `env:"CURL_PATH"`

	// RequestTimeout is the wall-clock limit for a single request,
	// enforced by the spawned process itself (e.g. "30s", "1m").
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// DraftsPath is the SQLite file holding unsaved-draft snapshots.
	// Env: STORAGE_DRAFTS_PATH
	DraftsPath string `env:"DRAFTS_PATH"`
}

// Workers holds background job settings.
type Workers struct {
	// AutoSaveInterval is how often the autosave job pushes a dirty
	// document to the basket. Zero disables autosave.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutoSaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// Server holds settings for the basketd development server.
type Server struct {
	// HTTPAddress is the TCP address basketd listens on, in "host:port"
	// format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (earlier sources win for fields
// they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
