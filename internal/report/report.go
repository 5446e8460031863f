package report

import (
	"context"

	"apjobs/internal/queue"
)

// Report holds the four pending-work aggregates. Each section carries its own
// error so one unavailable query does not hide the others; Collect keeps
// going and the caller decides how loudly to complain.
type Report struct {
	DeviceCounts []queue.DeviceCount
	DeviceErr    error

	BuildCounts []queue.BuildCount
	BuildErr    error

	PendingTests int
	TestsErr     error

	PendingSubmissions int
	SubmissionsErr     error
}

// Collect runs the four report queries in order, recording per-section
// failures instead of aborting.
func Collect(ctx context.Context, store *queue.Store) *Report {
	r := &Report{}
	r.DeviceCounts, r.DeviceErr = store.DeviceCounts(ctx)
	r.BuildCounts, r.BuildErr = store.BuildCounts(ctx)
	r.PendingTests, r.TestsErr = store.PendingTests(ctx)
	r.PendingSubmissions, r.SubmissionsErr = store.PendingSubmissions(ctx)
	return r
}

// Errs returns the errors of failed sections in report order.
func (r *Report) Errs() []error {
	var errs []error
	for _, err := range []error{r.DeviceErr, r.BuildErr, r.TestsErr, r.SubmissionsErr} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Failed reports whether any section was unavailable.
func (r *Report) Failed() bool {
	return len(r.Errs()) > 0
}

// Payload is the JSON shape of a report.
type Payload struct {
	DeviceCounts       []queue.DeviceCount `json:"pending_jobs_by_device"`
	BuildCounts        []queue.BuildCount  `json:"pending_jobs_by_build"`
	PendingTests       int                 `json:"pending_tests"`
	PendingSubmissions int                 `json:"pending_treeherder_submissions"`
	Errors             []string            `json:"errors,omitempty"`
}

// JSONPayload converts the report into its serializable form.
func (r *Report) JSONPayload() Payload {
	payload := Payload{
		DeviceCounts:       r.DeviceCounts,
		BuildCounts:        r.BuildCounts,
		PendingTests:       r.PendingTests,
		PendingSubmissions: r.PendingSubmissions,
	}
	for _, err := range r.Errs() {
		payload.Errors = append(payload.Errors, err.Error())
	}
	return payload
}
