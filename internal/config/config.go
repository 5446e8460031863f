package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Paths contains directory configuration.
type Paths struct {
	// StateDir is the directory containing the Autophone state databases,
	// most importantly jobs.sqlite. Usually supplied via AUTOPHONE_DIR.
	StateDir string `toml:"state_dir"`
}

// SSH contains connection settings for remote dispatch.
type SSH struct {
	User                  string   `toml:"user"`
	Port                  int      `toml:"port"`
	IdentityFile          string   `toml:"identity_file"`
	KnownHostsFile        string   `toml:"known_hosts_file"`
	InsecureIgnoreHostKey bool     `toml:"insecure_ignore_host_key"`
	ConnectTimeout        int      `toml:"connect_timeout"`
	ProfileFiles          []string `toml:"profile_files"`
	RemoteCommand         string   `toml:"remote_command"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration for ap-jobs.
type Config struct {
	Paths   Paths   `toml:"paths"`
	SSH     SSH     `toml:"ssh"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/apjobs/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. Missing files are not an error;
// defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// SetStateDir overrides the state directory, expanding the supplied path. The
// environment read itself stays at the entry point; callers pass the value in.
func (c *Config) SetStateDir(dir string) error {
	expanded, err := expandPath(dir)
	if err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	c.Paths.StateDir = expanded
	return nil
}

// DatabasePath returns the jobs database location under the state directory.
func (c *Config) DatabasePath() string {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.StateDir, "jobs.sqlite")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
