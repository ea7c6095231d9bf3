// Package config loads and saves the assembler's TOML-backed settings:
// emit capacity limits, diagnostic verbosity, and output formatting.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the assembler's and its CLI's tunables.
type Config struct {
	Emit struct {
		MaxInstructions  uint64 `toml:"max_instructions"`
		WarnNearLimitPct uint8  `toml:"warn_near_limit_pct"`
	} `toml:"emit"`

	Diagnostics struct {
		Verbose               bool `toml:"verbose"`
		WarnUnusedLabels      bool `toml:"warn_unused_labels"`
		StrictSignalConflicts bool `toml:"strict_signal_conflicts"` // stored only; the assembler always rejects signal conflicts
	} `toml:"diagnostics"`

	Output struct {
		Format       string `toml:"format"` // hex | bin | c_array
		BytesPerLine int    `toml:"bytes_per_line"`
	} `toml:"output"`
}

// DefaultConfig returns a Config populated with the assembler's defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Emit.MaxInstructions = 65536
	cfg.Emit.WarnNearLimitPct = 90

	cfg.Diagnostics.Verbose = false
	cfg.Diagnostics.WarnUnusedLabels = true
	cfg.Diagnostics.StrictSignalConflicts = true

	cfg.Output.Format = "hex"
	cfg.Output.BytesPerLine = 16

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "qpu-assembler")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "qpu-assembler")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file, falling back to
// defaults if it does not exist.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the given path, falling back to
// defaults if it does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the given path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
