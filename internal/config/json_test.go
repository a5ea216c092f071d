package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"basket": {"base_url": "http://localhost:9090", "id": "b1", "name": "todo"},
		"transport": {"kind": "native", "curl_path": "/usr/bin/curl", "request_timeout": "45s"},
		"storage": {"drafts_path": "/tmp/d.db"},
		"workers": {"autosave_interval": "2m"},
		"server": {"http_address": "127.0.0.1:7070"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.Basket.BaseURL)
	assert.Equal(t, "b1", cfg.Basket.ID)
	assert.Equal(t, "todo", cfg.Basket.Name)
	assert.Equal(t, "native", cfg.Transport.Kind)
	assert.Equal(t, "/usr/bin/curl", cfg.Transport.CurlPath)
	assert.Equal(t, 45*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "/tmp/d.db", cfg.Storage.DraftsPath)
	assert.Equal(t, 2*time.Minute, cfg.Workers.AutoSaveInterval)
	assert.Equal(t, "127.0.0.1:7070", cfg.Server.HTTPAddress)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(30 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(out))
}
