package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"apjobs/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.SSH.Port != 22 {
		t.Fatalf("expected default port 22, got %d", cfg.SSH.Port)
	}
	if cfg.SSH.RemoteCommand != "ap-jobs" {
		t.Fatalf("expected default remote command, got %q", cfg.SSH.RemoteCommand)
	}
	if len(cfg.SSH.ProfileFiles) != 2 || cfg.SSH.ProfileFiles[0] != "~/.bash_profile" {
		t.Fatalf("unexpected profile fallback order: %v", cfg.SSH.ProfileFiles)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := writeConfig(t, `
[paths]
state_dir = "/var/autophone"

[ssh]
user = "autophone"
port = 2222
profile_files = ["~/.zprofile"]
remote_command = "ap-jobs"

[logging]
level = "debug"
`)
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s to load, got %s exists=%v", path, resolved, exists)
	}
	if cfg.Paths.StateDir != "/var/autophone" {
		t.Fatalf("unexpected state dir: %q", cfg.Paths.StateDir)
	}
	if cfg.SSH.User != "autophone" || cfg.SSH.Port != 2222 {
		t.Fatalf("unexpected ssh settings: %+v", cfg.SSH)
	}
	if len(cfg.SSH.ProfileFiles) != 1 || cfg.SSH.ProfileFiles[0] != "~/.zprofile" {
		t.Fatalf("unexpected profiles: %v", cfg.SSH.ProfileFiles)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	path := writeConfig(t, "[ssh]\nport = 70000\n")
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "ssh.port") {
		t.Fatalf("expected port validation error, got %v", err)
	}
}

func TestLoadRejectsUnsafeProfilePath(t *testing.T) {
	path := writeConfig(t, "[ssh]\nprofile_files = [\"~/.profile'; rm -rf /\"]\n")
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "profile_files") {
		t.Fatalf("expected profile validation error, got %v", err)
	}
}

func TestSetStateDirExpands(t *testing.T) {
	cfg := config.Default()
	if err := cfg.SetStateDir("~/autophone"); err != nil {
		t.Fatalf("SetStateDir: %v", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}
	if cfg.Paths.StateDir != filepath.Join(home, "autophone") {
		t.Fatalf("expected expansion under home, got %q", cfg.Paths.StateDir)
	}
	if got := cfg.DatabasePath(); got != filepath.Join(home, "autophone", "jobs.sqlite") {
		t.Fatalf("unexpected database path: %q", got)
	}
}

func TestDatabasePathEmptyWithoutStateDir(t *testing.T) {
	cfg := config.Default()
	if got := cfg.DatabasePath(); got != "" {
		t.Fatalf("expected empty database path, got %q", got)
	}
}
