// Package config loads settle's configuration: built-in defaults, overlaid by
// an optional TOML file (~/.settle/config.toml), overlaid by environment
// variables. A .env file in the working directory is honored if present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full settle configuration.
type Config struct {
	// People is the default participant list used when the compute command
	// is given neither --people nor --roster.
	People []string `toml:"people"`

	// Output is the default path for the settlement workbook.
	Output string `toml:"output"`

	DB     DBConfig     `toml:"db"`
	Server ServerConfig `toml:"server"`
}

// DBConfig configures the roster database.
type DBConfig struct {
	Path string `toml:"path"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Metrics bool   `toml:"metrics"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		Output: "settlements.xlsx",
		DB: DBConfig{
			Path: filepath.Join(settleHome(), "rosters.db"),
		},
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    8080,
			Metrics: true,
		},
	}
}

// DefaultPath returns the default config file location, ~/.settle/config.toml.
func DefaultPath() string {
	return filepath.Join(settleHome(), "config.toml")
}

// Load builds the effective configuration. A missing config file is not an
// error when path is the default location; an explicitly requested file must
// exist.
func Load(path string) (Config, error) {
	// Pick up a .env file if one exists; missing is fine.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if explicit {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SETTLE_DB_PATH"); v != "" {
		cfg.DB.Path = v
	}
	if v := os.Getenv("SETTLE_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("SETTLE_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SETTLE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
}

func settleHome() string {
	if env := os.Getenv("SETTLE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".settle")
}
