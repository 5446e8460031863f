package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSSH(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = ""
		return nil
	}
	var err error
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSSH() error {
	c.SSH.User = strings.TrimSpace(c.SSH.User)
	if c.SSH.Port == 0 {
		c.SSH.Port = defaultSSHPort
	}
	if c.SSH.ConnectTimeout == 0 {
		c.SSH.ConnectTimeout = defaultSSHConnectTimeout
	}

	var err error
	c.SSH.IdentityFile = strings.TrimSpace(c.SSH.IdentityFile)
	if c.SSH.IdentityFile != "" {
		if c.SSH.IdentityFile, err = expandPath(c.SSH.IdentityFile); err != nil {
			return fmt.Errorf("ssh.identity_file: %w", err)
		}
	}
	c.SSH.KnownHostsFile = strings.TrimSpace(c.SSH.KnownHostsFile)
	if c.SSH.KnownHostsFile == "" {
		c.SSH.KnownHostsFile = defaultKnownHostsFile
	}
	if c.SSH.KnownHostsFile, err = expandPath(c.SSH.KnownHostsFile); err != nil {
		return fmt.Errorf("ssh.known_hosts_file: %w", err)
	}

	// Profile files stay as written; they name paths on the remote side and
	// must not be expanded against the local home directory.
	profiles := make([]string, 0, len(c.SSH.ProfileFiles))
	for _, profile := range c.SSH.ProfileFiles {
		if trimmed := strings.TrimSpace(profile); trimmed != "" {
			profiles = append(profiles, trimmed)
		}
	}
	if len(profiles) == 0 {
		profiles = defaultProfileFiles()
	}
	c.SSH.ProfileFiles = profiles

	c.SSH.RemoteCommand = strings.TrimSpace(c.SSH.RemoteCommand)
	if c.SSH.RemoteCommand == "" {
		c.SSH.RemoteCommand = defaultRemoteCommand
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
