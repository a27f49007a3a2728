package config

import "time"

// BusConfig contains event bus delivery configuration.
type BusConfig struct {
	// HandlerTimeout is the deadline passed to each subscribed handler.
	// On elapse, delivery is abandoned and bus.handler_timeout is published.
	HandlerTimeout time.Duration `yaml:"handler_timeout"`
}

// DefaultBusConfig returns the built-in bus defaults.
func DefaultBusConfig() *BusConfig {
	return &BusConfig{
		HandlerTimeout: 10 * time.Second,
	}
}
