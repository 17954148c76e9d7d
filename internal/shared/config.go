package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Window  WindowConfig  `toml:"window"`
	Storage StorageConfig `toml:"storage"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host      string  `toml:"host"`
	Port      uint16  `toml:"port"`
	Dev       bool    `toml:"dev"`
	AssetsDir string  `toml:"assets_dir"`
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
}

// WindowConfig contains native window settings.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Debug  bool   `toml:"debug"`
}

// StorageConfig contains token storage settings.
type StorageConfig struct {
	TokenFile string `toml:"token_file"`
}

// Addr returns the host:port pair the server binds to.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if config.Server.Host == "" {
		return nil, fmt.Errorf("%w: server.host is empty", ErrInvalidConfig)
	}

	return config, nil
}

// LoadConfigOrDefault loads the config at path when it exists, and falls back to [DefaultConfig] otherwise.
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return LoadConfig(path)
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
