// Package config defines the configuration schema for concierge.
//
// JSON keys use camelCase to match the config files shipped with the
// hosted deployments.
package config

import "time"

// UpstreamConfig holds the Hotelzify API endpoints and credentials.
type UpstreamConfig struct {
	// ChainID selects the hotel chain every tool call is scoped to.
	ChainID string `json:"chainId"`
	// ChainName is the display name used when the chain catalog is
	// unreachable.
	ChainName     string `json:"chainName"`
	HotelAPIBase  string `json:"hotelApiBase"`
	SearchAPIBase string `json:"searchApiBase"`
	// APIToken is the bearer credential for the authorised booking
	// endpoint. It has no default; set it in the config file or via the
	// CONCIERGE_API_TOKEN environment variable.
	APIToken       string `json:"apiToken"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

func defaultUpstreamConfig() UpstreamConfig {
	return UpstreamConfig{
		ChainID:        "1",
		ChainName:      "Sterling Resorts",
		HotelAPIBase:   "https://api.hotelzify.com",
		SearchAPIBase:  "https://chatapi.hotelzify.com",
		TimeoutSeconds: 15,
	}
}

// Timeout returns the upstream request timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	secs := u.TimeoutSeconds
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// ServerConfig holds the HTTP server settings (MCP endpoint, booking API
// and widget pages all share one listener).
type ServerConfig struct {
	Host         string   `json:"host"`
	Port         int      `json:"port"`
	AllowOrigins []string `json:"allowOrigins"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         "0.0.0.0",
		Port:         8080,
		AllowOrigins: []string{"*"},
	}
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `json:"level"`
	Development bool   `json:"development"`
}

func defaultLoggingConfig() LoggingConfig {
	return LoggingConfig{Level: "info"}
}

// Config is the root configuration object, loaded from
// ~/.concierge/config.json.
type Config struct {
	Upstream UpstreamConfig `json:"upstream"`
	Server   ServerConfig   `json:"server"`
	Logging  LoggingConfig  `json:"logging"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		Upstream: defaultUpstreamConfig(),
		Server:   defaultServerConfig(),
		Logging:  defaultLoggingConfig(),
	}
}
