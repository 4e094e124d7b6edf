// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied before the file and environment are read.
const (
	DefaultClientVersion = "cec-reporter"
	DefaultHTTPTimeout   = 15 * time.Second
	DefaultDatabase      = "public"
	DefaultTable         = "cec_reports"
)

// GreptimeConfig selects the optional GreptimeDB report sink.
type GreptimeConfig struct {
	Endpoint string `yaml:"endpoint"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

// Config is the root configuration of the reporter.
type Config struct {
	Commander     string         `yaml:"commander"`
	Beta          bool           `yaml:"beta"`
	ClientVersion string         `yaml:"client_version"`
	DryRun        bool           `yaml:"dry_run"`
	HTTPTimeout   string         `yaml:"http_timeout"`
	ReportLog     string         `yaml:"report_log"`
	StatusAddr    string         `yaml:"status_addr"`
	Greptime      GreptimeConfig `yaml:"greptime"`

	// Timeout is HTTPTimeout parsed.
	Timeout time.Duration `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ClientVersion: DefaultClientVersion,
		HTTPTimeout:   DefaultHTTPTimeout.String(),
		Timeout:       DefaultHTTPTimeout,
		Greptime: GreptimeConfig{
			Database: DefaultDatabase,
			Table:    DefaultTable,
		},
	}
}

// Load reads configPath, validates it against the embedded CUE schema and
// applies environment overrides. An empty path yields the defaults plus
// environment overrides.
func Load(configPath string) (*Config, error) {
	cfg := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
		if err := Validate(configPath, data); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot unmarshal config: %w", err)
		}
	}
	applyEnv(cfg)

	if cfg.HTTPTimeout != "" {
		d, err := time.ParseDuration(cfg.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid http_timeout %q: %w", cfg.HTTPTimeout, err)
		}
		cfg.Timeout = d
	}
	if cfg.ClientVersion == "" {
		cfg.ClientVersion = DefaultClientVersion
	}
	if cfg.Greptime.Database == "" {
		cfg.Greptime.Database = DefaultDatabase
	}
	if cfg.Greptime.Table == "" {
		cfg.Greptime.Table = DefaultTable
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GREPTIMEDB_ENDPOINT"); v != "" {
		cfg.Greptime.Endpoint = v
	}
	if v := os.Getenv("GREPTIMEDB_TABLE"); v != "" {
		cfg.Greptime.Table = v
	}
	if v := os.Getenv("CEC_COMMANDER"); v != "" {
		cfg.Commander = v
	}
}
