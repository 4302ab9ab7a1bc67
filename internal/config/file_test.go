package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "json",
			file: "config.json",
			content: `{
				"app": {"session_sign_key": "file-key", "session_max_age": "2h"},
				"storage": {"db": {"dsn": "sqlite:deck.db"}},
				"server": {"http_address": "localhost:8081", "request_timeout": "20s"},
				"adapter": {"catalog_url": "http://catalog", "cache_size": 8}
			}`,
		},
		{
			name: "toml",
			file: "config.toml",
			content: `
[app]
session_sign_key = "file-key"
session_max_age = "2h"

[storage.db]
dsn = "sqlite:deck.db"

[server]
http_address = "localhost:8081"
request_timeout = "20s"

[adapter]
catalog_url = "http://catalog"
cache_size = 8
`,
		},
		{
			name: "yaml",
			file: "config.yml",
			content: `
app:
  session_sign_key: file-key
  session_max_age: 2h
storage:
  db:
    dsn: sqlite:deck.db
server:
  http_address: localhost:8081
  request_timeout: 20s
adapter:
  catalog_url: http://catalog
  cache_size: 8
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.file, tt.content)

			cfg, err := parseFile(path)
			require.NoError(t, err)

			assert.Equal(t, "file-key", cfg.App.SessionSignKey)
			assert.Equal(t, 2*time.Hour, cfg.App.SessionMaxAge)
			assert.Equal(t, "sqlite:deck.db", cfg.Storage.DB.DSN)
			assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
			assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
			assert.Equal(t, "http://catalog", cfg.Adapter.CatalogURL)
			assert.Equal(t, 8, cfg.Adapter.CacheSize)
		})
	}
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "config.ini", "key=value")

	_, err := parseFile(path)

	assert.ErrorIs(t, err, ErrUnsupportedConfigFormat)
}

func TestParseFile_Malformed(t *testing.T) {
	path := writeTempConfig(t, "config.json", "{not valid json")

	_, err := parseFile(path)

	assert.Error(t, err)
}

func TestParseFile_EmptyYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "")

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_JSON(t *testing.T) {
	var got struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1m30s","b":1000}`), &got))

	assert.Equal(t, 90*time.Second, time.Duration(got.A))
	assert.Equal(t, time.Microsecond, time.Duration(got.B))

	out, err := json.Marshal(got.A)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(out))
}

func TestDuration_InvalidJSON(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
