package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.SessionSignKey = testSignKey
	cfg.Storage.DB.DSN = "sqlite::memory:"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsClosed verifies that a config without secrets
// is rejected instead of falling back to defaults.
func TestBuild_EmptyBuilderFailsClosed(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win over earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9999"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, testSignKey, cfg.App.SessionSignKey)
}

// ── withEnv / withFlags / withFile ────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOG_LEVEL":  "debug",
		"SERVER_ADDRESS": "localhost:7000",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "debug", b.configs[0].App.LogLevel)
	assert.Equal(t, "localhost:7000", b.configs[0].Server.HTTPAddress)
}

// TestWithFlags_NilFlagsIsNoOp verifies that a nil flag holder adds nothing.
func TestWithFlags_NilFlagsIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Empty(t, b.configs)
}

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a file path.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// path, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"app":{"log_level":"last-wins"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: "/nonexistent/first.json"},
		&StructuredConfig{ConfigFilePath: path},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.LogLevel)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempConfig(t, "deck.yaml", "server:\n  request_timeout: 45s\n")
	setEnvVars(t, map[string]string{
		"APP_SESSION_SIGN_KEY":    testSignKey,
		"STORAGE_DB_DATABASE_URI": "postgres://env/db",
		"CONFIG":                  path,
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-d", "postgres://flag/db"}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "postgres://flag/db", cfg.Storage.DB.DSN, "flags override env")
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout, "file overrides defaults")
	assert.Equal(t, "https://api.scryfall.com", cfg.Adapter.CatalogURL, "defaults fill the gaps")
}

func TestGetStructuredConfig_MissingSecretFailsClosed(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "postgres://env/db",
	})

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
