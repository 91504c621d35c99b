// ABOUTME: Fittrack configuration with storage backend selection and goal targets.
// ABOUTME: Handles settings, XDG paths, and the storage factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fittrack/internal/storage"
)

// Targets holds daily goal targets for adherence tracking. Zero means the
// target is unset; adherence against an unset target is an error, not 0%.
type Targets struct {
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	WaterL   float64 `json:"water_l,omitempty"`
	Steps    float64 `json:"steps,omitempty"`
}

// Config stores fittrack configuration.
type Config struct {
	// Backend selects the storage backend: "json" (default) or "badger".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. The json backend
	// puts one collection file per category here; badger puts its
	// database files here. Supports ~ expansion.
	DataDir string `json:"data_dir,omitempty"`

	// Targets are the daily goal targets shown by `fittrack summary goals`.
	Targets Targets `json:"targets,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "json".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "json"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (storage.Store, error) {
	dataDir := c.GetDataDir()

	switch backend := c.GetBackend(); backend {
	case "json":
		return storage.NewJSONStore(dataDir)
	case "badger":
		return storage.NewBadgerStore(filepath.Join(dataDir, "badger"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fittrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
