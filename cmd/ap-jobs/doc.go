// Package main hosts the ap-jobs CLI entrypoint.
//
// The command reports pending Autophone work: with no arguments it runs the
// four aggregate queries against the local jobs database, with hostnames it
// re-invokes itself on each host over SSH. Configuration resolution and the
// AUTOPHONE_DIR environment read happen here; the internal packages receive
// explicit configuration.
package main
