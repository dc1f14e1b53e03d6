package config

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "time"

    "github.com/joho/godotenv"
)

// envFiles are loaded in order. godotenv never overrides a variable that is
// already set, so the process environment wins over .env.local, which wins
// over .env.
var envFiles = []string{".env.local", ".env"}

// LoadEnvFiles populates the process environment from the dotenv files that
// exist in the working directory. Missing files are not an error.
func LoadEnvFiles() error {
    for _, name := range envFiles {
        if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
            return fmt.Errorf("load %s: %w", name, err)
        }
    }
    return nil
}

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }

// envFirst returns the first non-empty value among keys, or d.
func envFirst(d string, keys ...string) string {
    for _, k := range keys {
        if v := os.Getenv(k); v != "" { return v }
    }
    return d
}

func envDur(k string, d time.Duration) (time.Duration, error) {
    v := os.Getenv(k); if v == "" { return d, nil }
    dur, err := time.ParseDuration(v)
    if err != nil { return 0, fmt.Errorf("invalid duration for %s: %q", k, v) }
    return dur, nil
}
