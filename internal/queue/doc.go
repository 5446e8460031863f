// Package queue reads pending-work aggregates from the Autophone jobs
// database.
//
// The Store opens jobs.sqlite read-only and exposes the four counts the
// status report is built from: jobs grouped by device, jobs grouped by build,
// tests joined to pending jobs, and results awaiting Treeherder submission.
// The schema is owned by the Autophone daemon; this package never creates,
// migrates, or writes it.
package queue
