package fetch

import "time"

// Config holds configuration for upstream downloads.
type Config struct {
	// TimeoutSeconds bounds a single download, from dial to the last body byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// Concurrency is the maximum number of downloads in flight for one title.
	Concurrency int `mapstructure:"concurrency" default:"8"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"json-cooker/1.0"`
}

// Timeout returns the per-download timeout, defaulting to 60 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Limit returns the fan-out limit, defaulting to 8.
func (c Config) Limit() int {
	if c.Concurrency <= 0 {
		return 8
	}
	return c.Concurrency
}
