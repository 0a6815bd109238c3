package server

import "time"

// Config holds configuration for the HTTP trigger API.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// SyncTimeoutSeconds bounds a sync triggered over HTTP.
	SyncTimeoutSeconds int `mapstructure:"sync_timeout_seconds" default:"1800"`
	// HistoryLimit caps how many journal entries one request may list.
	HistoryLimit int `mapstructure:"history_limit" default:"100"`
}

// SyncTimeout returns the sync timeout as a duration.
func (c Config) SyncTimeout() time.Duration {
	return time.Duration(c.SyncTimeoutSeconds) * time.Second
}

// ClampLimit bounds a requested list size to [1, HistoryLimit].
// A non-positive request gets the default of 20, itself bounded.
func (c Config) ClampLimit(requested int) int {
	const defaultLimit = 20
	ceiling := c.HistoryLimit
	if ceiling <= 0 {
		ceiling = defaultLimit
	}
	if requested <= 0 {
		requested = defaultLimit
	}
	return min(requested, ceiling)
}
