package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClientConfig is loaded from ~/.config/addonhub/config.yaml and is shared
// across all invocations of the CLI.
type ClientConfig struct {
	Server string `yaml:"server"` // e.g. http://192.168.1.40:8732
	Token  string `yaml:"token"`
}

func clientConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "addonhub", "config.yaml"), nil
}

// LoadClientConfig reads ~/.config/addonhub/config.yaml. The ADDONHUB_TOKEN
// env var overrides the token stored in the file.
func LoadClientConfig() (*ClientConfig, error) {
	path, err := clientConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s (run 'addonhub init' first): %w", path, err)
	}

	var cfg ClientConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if t := os.Getenv("ADDONHUB_TOKEN"); t != "" {
		cfg.Token = t
	}

	if cfg.Server == "" {
		return nil, fmt.Errorf("%s: 'server' is required", path)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("no auth token: set ADDONHUB_TOKEN or add 'token:' to %s", path)
	}

	return &cfg, nil
}

// SaveClientConfig writes the config to ~/.config/addonhub/config.yaml.
func SaveClientConfig(cfg *ClientConfig) error {
	path, err := clientConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
