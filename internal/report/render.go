package report

import (
	"fmt"
	"io"
)

// Section headers match the original ap-jobs output so scripted consumers
// keep working. The build grouping is labeled "by date" because build IDs
// encode the build date.
const (
	deviceHeader      = "Pending Jobs by device"
	buildHeader       = "Pending Jobs by date"
	testsFormat       = "Pending Tests: %d\n"
	submissionsFormat = "Pending submissions to Treeherder: %d\n"
)

// RenderPlain writes the report in the original line-oriented format. Counts
// go to out; section failures become warnings on errOut and the remaining
// sections still print.
func RenderPlain(out, errOut io.Writer, r *Report) {
	fmt.Fprintln(out, deviceHeader)
	if r.DeviceErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.DeviceErr)
	} else {
		for _, entry := range r.DeviceCounts {
			fmt.Fprintf(out, "%d %s\n", entry.Count, entry.Device)
		}
	}

	fmt.Fprintln(out, buildHeader)
	if r.BuildErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.BuildErr)
	} else {
		for _, entry := range r.BuildCounts {
			fmt.Fprintf(out, "%d %s\n", entry.Count, entry.BuildID)
		}
	}

	if r.TestsErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.TestsErr)
	} else {
		fmt.Fprintf(out, testsFormat, r.PendingTests)
	}

	if r.SubmissionsErr != nil {
		fmt.Fprintf(errOut, "warning: %v\n", r.SubmissionsErr)
	} else {
		fmt.Fprintf(out, submissionsFormat, r.PendingSubmissions)
	}
}
