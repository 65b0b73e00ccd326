package app

import "fmt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigDir string // directory scanned for profile .hcl files
	Profile   string // profile name to resolve host/token from

	Host  string // explicit host, wins over environment and profile
	Token string // explicit token, wins over environment and profile

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults for the fields the
// caller left empty.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Profile == "" {
		cfg.Profile = "default"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
