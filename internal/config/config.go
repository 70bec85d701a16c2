// Package config loads zlend settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/zarlcorp/zlend/internal/query"
	"github.com/zarlcorp/zlend/internal/userdata"
)

// Config holds the settings that shape the generated user set and where
// operator state lives.
type Config struct {
	Seed     int64  `env:"ZLEND_SEED" envDefault:"12345"`
	Count    int    `env:"ZLEND_COUNT" envDefault:"500"`
	PageSize int    `env:"ZLEND_PAGE_SIZE" envDefault:"10"`
	DataDir  string `env:"ZLEND_DATA_DIR"`
}

// Load parses the environment and fills in derived defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Count < 0 {
		return Config{}, fmt.Errorf("ZLEND_COUNT=%d: %w", cfg.Count, userdata.ErrInvalidCount)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = query.DefaultPageSize
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DataDir()
	}
	return cfg, nil
}

// DataDir returns the default data directory for zlend.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "zlend")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zlend"
	}
	return filepath.Join(home, ".local", "share", "zlend")
}

// LogPath is where the TUI writes its log.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "zlend.log")
}
