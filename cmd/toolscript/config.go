package main

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config controls which host the CLI talks to and how snippets run.
type Config struct {
	Host    HostConfig    `toml:"host"`
	Run     RunConfig     `toml:"run"`
	Logging LoggingConfig `toml:"logging"`
}

// HostConfig selects the capability host.
type HostConfig struct {
	// Kind is "local" for the built-in demo toolset or "remote" for an
	// HTTP host.
	Kind    string `toml:"kind"`
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token"`
}

// RunConfig holds execution defaults; flags override these per run.
type RunConfig struct {
	TimeoutMS    int64  `toml:"timeout_ms"`
	MaxToolCalls int    `toml:"max_tool_calls"`
	Directory    string `toml:"directory"`
	Agent        string `toml:"agent"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

// Load reads config from the given path, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Host.Kind == "" {
		c.Host.Kind = "local"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

// Validate checks that required config fields are present and valid.
func (c *Config) Validate() error {
	switch c.Host.Kind {
	case "local":
	case "remote":
		if c.Host.BaseURL == "" {
			return fmt.Errorf("host.base_url is required when host.kind is remote")
		}
		u, err := url.Parse(c.Host.BaseURL)
		if err != nil {
			return fmt.Errorf("host.base_url is not a valid URL: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("host.base_url must use http or https scheme")
		}
	default:
		return fmt.Errorf("host.kind must be local or remote, got %q", c.Host.Kind)
	}

	if c.Run.TimeoutMS < 0 {
		return fmt.Errorf("run.timeout_ms must not be negative")
	}
	if c.Run.MaxToolCalls < 0 {
		return fmt.Errorf("run.max_tool_calls must not be negative")
	}

	return nil
}
