// Package report assembles and renders the pending-work status report.
//
// Collect runs the four aggregate queries in a fixed order and records
// per-section errors instead of aborting, so an operator still sees whatever
// counts are reachable. Rendering keeps the original ap-jobs plain-text
// format byte for byte; richer output shapes build on JSONPayload.
package report
