package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cec.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Setenv("GREPTIMEDB_ENDPOINT", "")
	t.Setenv("GREPTIMEDB_TABLE", "")
	t.Setenv("CEC_COMMANDER", "")
}

func TestLoadConfig_Valid(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
commander: Jameson
beta: true
dry_run: true
http_timeout: 5s
report_log: reports.jsonl
status_addr: ":9090"
greptime:
  endpoint: db.local:4001
  table: reports
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Commander != "Jameson" || !cfg.Beta || !cfg.DryRun {
		t.Errorf("unexpected identity: %+v", cfg)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Greptime.Endpoint != "db.local:4001" || cfg.Greptime.Table != "reports" || cfg.Greptime.Database != DefaultDatabase {
		t.Errorf("unexpected greptime config: %+v", cfg.Greptime)
	}
	if cfg.ClientVersion != DefaultClientVersion {
		t.Errorf("client version = %q", cfg.ClientVersion)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Timeout != DefaultHTTPTimeout || cfg.Greptime.Table != DefaultTable || cfg.DryRun {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GREPTIMEDB_ENDPOINT", "env.local")
	t.Setenv("GREPTIMEDB_TABLE", "env_reports")
	t.Setenv("CEC_COMMANDER", "Env Cmdr")
	path := writeConfig(t, "commander: File Cmdr\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Commander != "Env Cmdr" || cfg.Greptime.Endpoint != "env.local" || cfg.Greptime.Table != "env_reports" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"wrong type":    "beta: \"yes please\"\n",
		"unknown field": "commandr: Jameson\n",
		"bad timeout":   "http_timeout: soon\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
