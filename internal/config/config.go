package config // package config loads application configuration from environment variables

import (
    "fmt"     // fmt wraps configuration errors with the offending variable
    "strconv" // strconv validates the port number
    "time"    // time holds the shutdown timeout
)

// Defaults applied when the corresponding variable is unset or empty.
const (
    DefaultPort            = "3001"
    DefaultEnv             = "production"
    DefaultLogLevel        = "info"
    DefaultShutdownTimeout = 10 * time.Second
)

// Config holds all runtime configuration values.  It is resolved once at
// startup and never mutated afterwards, so handlers may share it freely.
type Config struct {
    Env             string        // deployment environment surfaced by /api/message (e.g. "staging")
    Port            string        // HTTP port to listen on
    LogLevel        string        // zap level name
    ShutdownTimeout time.Duration // grace period for in-flight requests on SIGINT/SIGTERM
}

// Load reads configuration values from the environment and returns a
// Config.  NODE_ENV takes precedence over APP_ENV for the environment name.
// An invalid PORT or SHUTDOWN_TIMEOUT is reported as an error so the caller
// can exit before binding anything.
func Load() (Config, error) {
    cfg := Config{
        Env:      envFirst(DefaultEnv, "NODE_ENV", "APP_ENV"), // environment name, first non-empty wins
        Port:     envStr("PORT", DefaultPort),                 // port to bind the HTTP server
        LogLevel: envStr("LOG_LEVEL", DefaultLogLevel),        // minimum log level
    }

    // The port must be a usable TCP port number.  Anything else would only
    // surface later as an obscure listen error.
    n, err := strconv.Atoi(cfg.Port)
    if err != nil || n < 1 || n > 65535 {
        return Config{}, fmt.Errorf("invalid PORT %q: must be an integer between 1 and 65535", cfg.Port)
    }

    cfg.ShutdownTimeout, err = envDur("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout)
    if err != nil {
        return Config{}, err
    }
    return cfg, nil
}

// Addr returns the listen address for the configured port on all interfaces.
func (c Config) Addr() string {
    return ":" + c.Port
}
