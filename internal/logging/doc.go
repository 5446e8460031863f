// Package logging assembles the structured slog loggers used across ap-jobs.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same shape on the same stream. The report itself is plain stdout
// and never routed through a logger.
package logging
