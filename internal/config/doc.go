// SPDX-License-Identifier: Apache-2.0

// Package config loads sheet-todo configuration from environment variables,
// command-line flags, and an optional JSON file, merging them in that
// priority order.
//
// The main entry points are [GetClientConfig] for the sheetpad client and
// [GetServerConfig] for the basketd development server.
package config
