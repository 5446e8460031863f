package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"apjobs/internal/queue"
	"apjobs/internal/report"
)

func runLocalReport(ctx *commandContext, cmd *cobra.Command, format string, asJSON bool) error {
	if !asJSON && format != "plain" && format != "table" {
		return fmt.Errorf("unknown format %q (expected plain or table)", format)
	}

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := ctx.ensureLogger().With("run_id", uuid.NewString())

	store, err := queue.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Debug("collecting local report", "db", store.Path())

	r := report.Collect(cmd.Context(), store)

	switch {
	case asJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.JSONPayload()); err != nil {
			return err
		}
	case format == "table":
		renderReportTables(cmd, r)
	default:
		report.RenderPlain(cmd.OutOrStdout(), cmd.ErrOrStderr(), r)
	}

	if errs := r.Errs(); len(errs) > 0 {
		return fmt.Errorf("%d report section(s) unavailable", len(errs))
	}
	return nil
}

func renderReportTables(cmd *cobra.Command, r *report.Report) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	colorize := shouldColorize(out)

	fmt.Fprintln(out, sectionHeader("Pending Jobs by device", colorize))
	if r.DeviceErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.DeviceErr)
	} else {
		rows := make([][]string, 0, len(r.DeviceCounts))
		for _, entry := range r.DeviceCounts {
			rows = append(rows, []string{strconv.Itoa(entry.Count), entry.Device})
		}
		fmt.Fprintln(out, renderTable([]string{"Count", "Device"}, rows, []columnAlignment{alignRight, alignLeft}))
	}

	fmt.Fprintln(out, sectionHeader("Pending Jobs by date", colorize))
	if r.BuildErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.BuildErr)
	} else {
		rows := make([][]string, 0, len(r.BuildCounts))
		for _, entry := range r.BuildCounts {
			rows = append(rows, []string{strconv.Itoa(entry.Count), entry.BuildID, entry.BuildURL})
		}
		fmt.Fprintln(out, renderTable([]string{"Count", "Build", "URL"}, rows, []columnAlignment{alignRight, alignLeft, alignLeft}))
	}

	if r.TestsErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.TestsErr)
	} else {
		fmt.Fprintf(out, "Pending Tests: %d\n", r.PendingTests)
	}
	if r.SubmissionsErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.SubmissionsErr)
	} else {
		fmt.Fprintf(out, "Pending submissions to Treeherder: %d\n", r.PendingSubmissions)
	}
}
