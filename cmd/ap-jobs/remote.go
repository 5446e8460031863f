package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"apjobs/internal/config"
	"apjobs/internal/remote"
)

// newDispatcher is a seam so tests can substitute the SSH session runner.
var newDispatcher = func(cfg *config.Config, logger *slog.Logger) *remote.Dispatcher {
	return remote.New(cfg, logger)
}

func runRemoteDispatch(ctx *commandContext, cmd *cobra.Command, hosts []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger().With("run_id", uuid.NewString())

	dispatcher := newDispatcher(cfg, logger)
	results := dispatcher.Dispatch(cmd.Context(), hosts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(results) == 0 {
		return nil
	}

	// The process exits with the last host's status, matching the original
	// sequential loop. Failures on earlier hosts were already printed inline.
	last := results[len(results)-1]
	if last.Err != nil || last.ExitCode != 0 {
		code := last.ExitCode
		if code == 0 {
			code = 1
		}
		return &exitCodeError{code: code}
	}
	return nil
}
