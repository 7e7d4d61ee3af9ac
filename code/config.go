package code

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by applyDefaults for zero-valued Config fields.
const (
	// DefaultTimeout is the execution deadline applied when none is
	// configured.
	DefaultTimeout = 300000 * time.Millisecond

	// DefaultMaxToolCalls is the capability invocation ceiling applied
	// when none is configured.
	DefaultMaxToolCalls = 100
)

// Config holds the configuration for a code executor.
type Config struct {
	// Engine is the pluggable code execution engine.
	// Required.
	Engine Engine

	// Timeout is the default execution deadline when not specified in
	// ExecuteParams. Zero applies DefaultTimeout.
	Timeout time.Duration

	// MaxToolCalls is the default capability invocation ceiling per
	// execution. Zero applies DefaultMaxToolCalls.
	MaxToolCalls int

	// Logger is an optional logger for observability.
	Logger Logger
}

// Validate checks that all required fields are set and all limits are sane.
// Returns ErrConfiguration if a required field is missing or a limit is
// negative.
func (c *Config) Validate() error {
	var missing []string

	if c.Engine == nil {
		missing = append(missing, "Engine")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s",
			ErrConfiguration, strings.Join(missing, ", "))
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: Timeout must not be negative", ErrConfiguration)
	}
	if c.MaxToolCalls < 0 {
		return fmt.Errorf("%w: MaxToolCalls must not be negative", ErrConfiguration)
	}
	return nil
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxToolCalls == 0 {
		c.MaxToolCalls = DefaultMaxToolCalls
	}
}
