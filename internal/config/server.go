package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig is loaded from /etc/addonhub/server.yaml on the host running
// the game server.
type ServerConfig struct {
	Listen string `yaml:"listen"` // e.g. ":8732"
	Token  string `yaml:"token"`
	LogDir string `yaml:"log_dir"`

	// DataDir is the game server root holding behavior_packs/ and
	// resource_packs/.
	DataDir   string `yaml:"data_dir"`
	UploadDir string `yaml:"upload_dir"`

	InstallScript string `yaml:"install_script"`
	RemoveScript  string `yaml:"remove_script"`

	MaxUploadMB          int64 `yaml:"max_upload_mb"`
	ScriptTimeoutSeconds int   `yaml:"script_timeout_seconds"`
	ScanTimeoutSeconds   int   `yaml:"scan_timeout_seconds"`
}

// LoadServerConfig reads and parses the server config file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if cfg.Token == "" {
		return nil, fmt.Errorf("%s: 'token' is required", path)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8732"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "/var/log/addonhub"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "/var/lib/minecraft"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "/var/lib/addonhub/uploads"
	}
	if cfg.InstallScript == "" {
		cfg.InstallScript = "./install-mcaddon.sh"
	}
	if cfg.RemoveScript == "" {
		cfg.RemoveScript = "./remove-mcaddon.sh"
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 50
	}
	if cfg.ScriptTimeoutSeconds <= 0 {
		cfg.ScriptTimeoutSeconds = 300
	}
	if cfg.ScanTimeoutSeconds <= 0 {
		cfg.ScanTimeoutSeconds = 60
	}

	return &cfg, nil
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *ServerConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// ScriptTimeout bounds one install/remove script invocation.
func (c *ServerConfig) ScriptTimeout() time.Duration {
	return time.Duration(c.ScriptTimeoutSeconds) * time.Second
}

// ScanTimeout bounds one full inventory scan.
func (c *ServerConfig) ScanTimeout() time.Duration {
	return time.Duration(c.ScanTimeoutSeconds) * time.Second
}
