package client

import (
	"time"
)

// NewFirewatchClient creates a new Firewatch client for the given base
// URL. This is a convenience wrapper around NewClient.
func NewFirewatchClient(baseURL string) (*Firewatch, error) {
	cfg := Config{
		BaseURL: baseURL,
		Timeout: 30 * time.Second,
	}

	return NewClient(cfg)
}
