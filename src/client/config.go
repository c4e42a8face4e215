package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the CLI client configuration
type Config struct {
	// Nightscout server host
	Host string `yaml:"host,omitempty"`
	// Nightscout server port
	Port string `yaml:"port,omitempty"`
	// Shared secret sent in the API-SECRET header
	APISecret string `yaml:"api_secret,omitempty"`
	// Request timeout in seconds
	Timeout int `yaml:"timeout,omitempty"`
}

// Built-in defaults, overridden by config file, environment, then flags
const (
	DefaultHost    = "127.0.0.1"
	DefaultPort    = "80"
	DefaultTimeout = 30
)

// DefaultConfig returns the default configuration
// No API secret ships as a default; the server may allow unauthenticated
// reads, otherwise the secret must come from config, environment, or flag.
func DefaultConfig() *Config {
	return &Config{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Timeout: DefaultTimeout,
	}
}

// BaseURL returns the server base URL
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%s", c.Host, c.Port)
}

// LoadConfig loads the configuration from the default config file
func LoadConfig() (*Config, error) {
	return LoadConfigFromFile(ConfigFile())
}

// LoadConfigFromFile loads configuration from the given config file path,
// then applies environment variable overrides.
func LoadConfigFromFile(configPath string) (*Config, error) {
	// Start with defaults
	config := DefaultConfig()

	// If config exists, load it
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, NewAPIError(fmt.Sprintf("failed to read config: %v", err))
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, NewAPIError(fmt.Sprintf("failed to parse config: %v", err))
		}
	}

	// A .env file in the working directory feeds the environment when
	// present. godotenv never overrides variables already set, so real
	// environment variables win over .env contents.
	_ = godotenv.Load()

	// Environment variable overrides
	if v := os.Getenv("NIGHTSCOUT_HOST"); v != "" {
		config.Host = v
	}
	if v := os.Getenv("NIGHTSCOUT_PORT"); v != "" {
		config.Port = v
	}
	if v := os.Getenv("NIGHTSCOUT_API_SECRET"); v != "" {
		config.APISecret = v
	}

	return config, nil
}

// SaveConfig saves the configuration to the config file
func SaveConfig(config *Config) error {
	configPath := ConfigFile()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return NewAPIError(fmt.Sprintf("failed to create config directory: %v", err))
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return NewAPIError(fmt.Sprintf("failed to marshal config: %v", err))
	}

	// 0600: the file may hold the shared secret
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return NewAPIError(fmt.Sprintf("failed to write config: %v", err))
	}

	return nil
}

// InitConfig initializes a new configuration file
func InitConfig() error {
	configPath := ConfigFile()

	if _, err := os.Stat(configPath); err == nil {
		return NewAPIError("config file already exists")
	}

	if err := SaveConfig(DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Configuration file created at: %s\n", configPath)
	return nil
}

// GetConfigValue returns a specific configuration value
func GetConfigValue(key string) (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	switch key {
	case "host":
		return config.Host, nil
	case "port":
		return config.Port, nil
	case "api_secret":
		return config.APISecret, nil
	case "timeout":
		return strconv.Itoa(config.Timeout), nil
	default:
		return "", NewUsageError(fmt.Sprintf("unknown config key: %s", key))
	}
}

// SetConfigValue sets a specific configuration value
func SetConfigValue(key, value string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "host":
		config.Host = value
	case "port":
		if _, err := strconv.Atoi(value); err != nil {
			return NewUsageError("port must be a number")
		}
		config.Port = value
	case "api_secret":
		config.APISecret = value
	case "timeout":
		timeout, err := strconv.Atoi(value)
		if err != nil || timeout <= 0 {
			return NewUsageError("timeout must be a positive number of seconds")
		}
		config.Timeout = timeout
	default:
		return NewUsageError(fmt.Sprintf("unknown config key: %s", key))
	}

	return SaveConfig(config)
}
