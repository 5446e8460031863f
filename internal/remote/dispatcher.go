package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"apjobs/internal/config"
)

// Runner executes a command on a remote host, streaming output to the given
// writers, and returns the remote exit code. Tests substitute this seam.
type Runner func(ctx context.Context, host, command string, out, errOut io.Writer) (int, error)

// HostResult records the outcome of one host's session.
type HostResult struct {
	Host     string
	ExitCode int
	Err      error
}

// Dispatcher invokes the status command on remote hosts over SSH, one host
// at a time in argument order.
type Dispatcher struct {
	ssh    config.SSH
	logger *slog.Logger
	run    Runner
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithRunner replaces the SSH session runner. Callers use it to exercise
// dispatch behavior without live connections.
func WithRunner(run Runner) Option {
	return func(d *Dispatcher) {
		d.run = run
	}
}

// New constructs a Dispatcher using the configured SSH settings.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{ssh: cfg.SSH, logger: logger}
	d.run = d.runSSH
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch visits each host in order: delimiter line, session, remote status
// command. A failing host is reported and the loop continues; only context
// cancellation stops the remaining hosts.
func (d *Dispatcher) Dispatch(ctx context.Context, hosts []string, out, errOut io.Writer) []HostResult {
	command := Command(d.ssh.ProfileFiles, d.ssh.RemoteCommand)
	results := make([]HostResult, 0, len(hosts))

	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			results = append(results, HostResult{Host: host, ExitCode: transportExitCode, Err: err})
			break
		}
		fmt.Fprintf(out, "========== %s ==========\n", host)

		d.logger.Debug("dispatching status command", "host", host, "command", command)
		code, err := d.run(ctx, host, command, out, errOut)
		if err != nil {
			err = fmt.Errorf("%w: %s: %v", ErrSessionFailed, host, err)
			fmt.Fprintln(errOut, err)
		}
		results = append(results, HostResult{Host: host, ExitCode: code, Err: err})
	}
	return results
}

// Command builds the remote shell line: source the first profile file that
// exists, then invoke the status command. The fallback chain is data, not
// per-host conditionals.
func Command(profiles []string, command string) string {
	var b strings.Builder
	for i, profile := range profiles {
		if i == 0 {
			fmt.Fprintf(&b, "if [ -e %s ]; then . %s; ", profile, profile)
		} else {
			fmt.Fprintf(&b, "elif [ -e %s ]; then . %s; ", profile, profile)
		}
	}
	if len(profiles) > 0 {
		b.WriteString("fi; ")
	}
	b.WriteString(command)
	return b.String()
}
