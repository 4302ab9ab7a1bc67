package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for config files. The same keys are
// used for every supported format.
type fileConfig struct {
	App struct {
		SessionSignKey    string   `json:"session_sign_key" toml:"session_sign_key" yaml:"session_sign_key"`
		SessionCookieName string   `json:"session_cookie_name" toml:"session_cookie_name" yaml:"session_cookie_name"`
		SessionMaxAge     Duration `json:"session_max_age" toml:"session_max_age" yaml:"session_max_age"`
		SecureCookie      bool     `json:"secure_cookie" toml:"secure_cookie" yaml:"secure_cookie"`
		BcryptCost        int      `json:"bcrypt_cost" toml:"bcrypt_cost" yaml:"bcrypt_cost"`
		LogLevel          string   `json:"log_level" toml:"log_level" yaml:"log_level"`
	} `json:"app" toml:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn" yaml:"dsn"`
		} `json:"db" toml:"db" yaml:"db"`
	} `json:"storage" toml:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" toml:"server" yaml:"server"`

	Adapter struct {
		CatalogURL     string   `json:"catalog_url" toml:"catalog_url" yaml:"catalog_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout" yaml:"request_timeout"`
		UserAgent      string   `json:"user_agent" toml:"user_agent" yaml:"user_agent"`
		CacheSize      int      `json:"cache_size" toml:"cache_size" yaml:"cache_size"`
	} `json:"adapter" toml:"adapter" yaml:"adapter"`
}

// parseFile reads the config file at path, choosing the decoder by the file
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.NewDecoder(file).Decode(&fc)
	case ".toml":
		err = toml.NewDecoder(file).Decode(&fc)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(&fc)
		if err == io.EOF {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSignKey:    fc.App.SessionSignKey,
			SessionCookieName: fc.App.SessionCookieName,
			SessionMaxAge:     time.Duration(fc.App.SessionMaxAge),
			SecureCookie:      fc.App.SecureCookie,
			BcryptCost:        fc.App.BcryptCost,
			LogLevel:          fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			CatalogURL:     fc.Adapter.CatalogURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			UserAgent:      fc.Adapter.UserAgent,
			CacheSize:      fc.Adapter.CacheSize,
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" in every supported config format.
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
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
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalText parses a duration string. TOML and YAML decoders use it.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON encodes the duration as a string such as "1m30s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
