package testsupport

import (
	"testing"

	"apjobs/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose state directory points at a unique temp
// directory per test. The jobs database does not exist until SeedDatabase
// creates it.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	if err := cfg.SetStateDir(t.TempDir()); err != nil {
		t.Fatalf("SetStateDir: %v", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRemoteCommand overrides the dispatched remote command name.
func WithRemoteCommand(command string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.SSH.RemoteCommand = command
	}
}

// WithProfileFiles overrides the remote initialization fallback list.
func WithProfileFiles(paths ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.SSH.ProfileFiles = paths
	}
}
