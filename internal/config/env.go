package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised by tripcost.
const (
	EnvConfig      = "TRIPCOST_CONFIG"
	EnvHopDistance = "TRIPCOST_HOP_DISTANCE"
	EnvCurrency    = "TRIPCOST_CURRENCY"
	EnvExportDir   = "TRIPCOST_EXPORT_DIR"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv returns cfg with environment overrides applied.
// The result is meant for the running process; don't Save it.
func ApplyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvHopDistance)); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvHopDistance, err)
		}
		cfg.General.HopDistance = d
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.General.Currency = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		cfg.General.ExportDir = v
	}
	return cfg, nil
}
