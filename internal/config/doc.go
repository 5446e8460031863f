// Package config loads and validates ap-jobs configuration.
//
// Configuration comes from a TOML file with sensible defaults layered
// underneath; the Autophone state directory may additionally be supplied by
// the caller (SetStateDir), keeping environment reads at the entry point
// rather than inside package logic. All local path fields are tilde-expanded
// and made absolute during load; remote profile paths are left untouched
// because they resolve on the target host.
package config
