package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSSH(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSSH() error {
	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		return fmt.Errorf("ssh.port must be between 1 and 65535, got %d", c.SSH.Port)
	}
	if c.SSH.ConnectTimeout < 1 {
		return errors.New("ssh.connect_timeout must be at least 1 second")
	}
	if len(c.SSH.ProfileFiles) == 0 {
		return errors.New("ssh.profile_files must name at least one initialization file")
	}
	for _, profile := range c.SSH.ProfileFiles {
		if strings.ContainsAny(profile, "'\n") {
			return fmt.Errorf("ssh.profile_files entry %q contains characters unsafe for the remote shell", profile)
		}
	}
	if c.SSH.RemoteCommand == "" {
		return errors.New("ssh.remote_command must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
