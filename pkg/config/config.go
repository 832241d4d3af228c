package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/mrexodia/devdocs-cli/pkg/utils"
)

type Config struct {
	Commands CommandsConfig `json:"commands"`
	Host     HostConfig     `json:"host"`
	Log      LogConfig      `json:"log"`
}

type CommandsConfig struct {
	// TemplateVersion selects the instruction template set ("v1", "v2").
	TemplateVersion string `json:"template_version" env:"DEVDOCS_TEMPLATE_VERSION"`
	CustomType      string `json:"custom_type" env:"DEVDOCS_CUSTOM_TYPE"`
}

// HostConfig points at a Pico-protocol agent host. An empty Address keeps
// dispatched messages local.
type HostConfig struct {
	Address        string  `json:"address" env:"DEVDOCS_HOST_ADDRESS"`
	SessionID      string  `json:"session_id" env:"DEVDOCS_HOST_SESSION_ID"`
	Token          string  `json:"token,omitempty" env:"DEVDOCS_HOST_TOKEN"`
	SendsPerSecond float64 `json:"sends_per_second" env:"DEVDOCS_HOST_SENDS_PER_SECOND"`
}

type LogConfig struct {
	Level string `json:"level" env:"DEVDOCS_LOG_LEVEL"`
	File  string `json:"file,omitempty" env:"DEVDOCS_LOG_FILE"`
}

func DefaultConfig() *Config {
	return &Config{
		Commands: CommandsConfig{
			TemplateVersion: "v2",
			CustomType:      "devdocs",
		},
		Host: HostConfig{
			SessionID:      "devdocs",
			SendsPerSecond: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults, then applies DEVDOCS_* environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config environment: %w", err)
	}

	return cfg, nil
}

func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return utils.WritePrivateFile(path, data)
}
