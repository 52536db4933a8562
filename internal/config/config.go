package config // package config loads application configuration from environment variables

import (
	"fmt"     // fmt builds configuration error messages
	"strconv" // strconv validates the numeric port
	"time"    // time provides the shutdown timeout type
)

// Config holds the runtime settings of the service.  The listen port is the
// only setting that changes what clients see; the rest tune the process.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	ShutdownTimeout time.Duration // upper bound for graceful shutdown
}

// Load reads configuration values from environment variables and returns a
// Config.  Every variable has a default so the service starts with an empty
// environment; an invalid APP_PORT is reported as an error.
func Load() (Config, error) {
	cfg := Config{
		Env:             envStr("APP_ENV", "dev"),                    // environment (dev/test/prod)
		Port:            envStr("APP_PORT", "8080"),                  // port to bind the HTTP server
		ShutdownTimeout: envDur("SHUTDOWN_TIMEOUT", 10*time.Second), // graceful shutdown budget
	}
	if err := validatePort(cfg.Port); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	return cfg, nil
}

// Addr returns the listen address in the host:port form expected by Echo.
func (c Config) Addr() string {
	return ":" + c.Port
}

// validatePort rejects ports that are not numbers in the 1..65535 range.
func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", port, err)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid APP_PORT %q: out of range", port)
	}
	return nil
}
