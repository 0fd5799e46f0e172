package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the full monitoring surface. The target lists and
// output path default to values baked into the artifact; deployment
// tooling may override them with a YAML file (MONITOR_CONFIG or the
// -config flag) and a few individual environment variables.
type Config struct {
	OutputPath string   `yaml:"output_path"` // published metrics file
	LogDir     string   `yaml:"log_dir"`     // structured log directory
	Addr       string   `yaml:"addr"`        // exporter bind address
	Websites   []string `yaml:"websites"`
	Hosts      []string `yaml:"hosts"`

	HTTPConnectTimeoutSec int `yaml:"http_connect_timeout_seconds"`
	HTTPTotalTimeoutSec   int `yaml:"http_total_timeout_seconds"`
	TLSTimeoutSec         int `yaml:"tls_timeout_seconds"`
	PingCount             int `yaml:"ping_count"`
	PingTimeoutSec        int `yaml:"ping_timeout_seconds"`
}

// Default returns the configuration baked into the artifact.
func Default() Config {
	return Config{
		OutputPath: "/var/lib/node_exporter/textfile_collector/website_monitor.prom",
		LogDir:     "logs",
		Addr:       "127.0.0.1:9105",
		Websites: []string{
			"https://www.example.com",
			"https://grafana.example.com",
			"http://intranet.example.com",
		},
		Hosts: []string{
			"192.168.1.10",
			"192.168.1.11",
			"fileserver.local",
		},
		HTTPConnectTimeoutSec: 15,
		HTTPTotalTimeoutSec:   30,
		TLSTimeoutSec:         10,
		PingCount:             3,
		PingTimeoutSec:        3,
	}
}

// Load reads configuration from a YAML file, falling back to the baked
// defaults when path is empty or the file does not exist, then applies
// environment overrides (OUTPUT_PATH, LOG_DIR, ADDR).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(content, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}

	if cfg.HTTPConnectTimeoutSec <= 0 {
		cfg.HTTPConnectTimeoutSec = 15
	}
	if cfg.HTTPTotalTimeoutSec <= 0 {
		cfg.HTTPTotalTimeoutSec = 30
	}
	if cfg.TLSTimeoutSec <= 0 {
		cfg.TLSTimeoutSec = 10
	}
	if cfg.PingCount <= 0 {
		cfg.PingCount = 3
	}
	if cfg.PingTimeoutSec <= 0 {
		cfg.PingTimeoutSec = 3
	}
	return cfg, nil
}

func (c Config) ConnectTimeout() time.Duration {
	return time.Duration(c.HTTPConnectTimeoutSec) * time.Second
}

func (c Config) TotalTimeout() time.Duration {
	return time.Duration(c.HTTPTotalTimeoutSec) * time.Second
}

func (c Config) TLSTimeout() time.Duration {
	return time.Duration(c.TLSTimeoutSec) * time.Second
}

func (c Config) PingTimeout() time.Duration {
	return time.Duration(c.PingTimeoutSec) * time.Second
}
