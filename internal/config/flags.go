package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the command-line values bound by [RegisterFlags].
// The values are read after the flag set has been parsed.
type Flags struct {
	serverAddress     NetAddress
	databaseDSN       string
	configPath        string
	sessionSignKey    string
	catalogURL        string
	requestTimeout    time.Duration
	catalogTimeout    time.Duration
	logLevel          string
	secureCookie      bool
	sessionCookieName string
}

// RegisterFlags binds all configuration flags to fs.
//
// Flags:
//
//	-a/--address          server address in format [host]:[port]
//	-d/--database-dsn     database DSN
//	-c/--config           JSON, TOML or YAML config file path
//	--session-sign-key    session cookie signing key
//	--session-cookie-name session cookie name
//	--secure-cookie       send the session cookie over HTTPS only
//	--catalog-url         card catalog base URL
//	--request-timeout     request timeout (e.g., "30s", "1m")
//	--catalog-timeout     card catalog request timeout
//	--log-level           log level (debug, info, warn, error)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.VarP(&f.serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&f.databaseDSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVarP(&f.configPath, "config", "c", "", "Config file path (.json, .toml, .yaml)")
	fs.StringVar(&f.sessionSignKey, "session-sign-key", "", "Session cookie signing key")
	fs.StringVar(&f.sessionCookieName, "session-cookie-name", "", "Session cookie name")
	fs.BoolVar(&f.secureCookie, "secure-cookie", false, "Send the session cookie over HTTPS only")
	fs.StringVar(&f.catalogURL, "catalog-url", "", "Card catalog base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&f.catalogTimeout, "catalog-timeout", 0, "Card catalog request timeout")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level")

	return f
}

// Config converts the parsed flag values into a partial [StructuredConfig].
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionSignKey:    f.sessionSignKey,
			SessionCookieName: f.sessionCookieName,
			SecureCookie:      f.secureCookie,
			LogLevel:          f.logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: f.databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			CatalogURL:     f.catalogURL,
			RequestTimeout: f.catalogTimeout,
		},
		ConfigFilePath: f.configPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
