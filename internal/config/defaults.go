package config

const (
	defaultSSHPort           = 22
	defaultSSHConnectTimeout = 10
	defaultKnownHostsFile    = "~/.ssh/known_hosts"
	defaultRemoteCommand     = "ap-jobs"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// defaultProfileFiles mirrors the login initialization order used on the
// Autophone hosts: bash_profile first, plain profile as the fallback.
func defaultProfileFiles() []string {
	return []string{"~/.bash_profile", "~/.profile"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		SSH: SSH{
			Port:           defaultSSHPort,
			ConnectTimeout: defaultSSHConnectTimeout,
			KnownHostsFile: defaultKnownHostsFile,
			ProfileFiles:   defaultProfileFiles(),
			RemoteCommand:  defaultRemoteCommand,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
